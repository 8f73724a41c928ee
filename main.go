package main

import (
	"github.com/JakubFranek/Nexys-A7-Lab/cmd"
)

func main() {
	cmd.Execute()
}

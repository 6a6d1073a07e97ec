package main

import (
	_ "time/tzdata"

	"github.com/hance08/findpayments/cmd"
)

func main() {
	cmd.Execute()
}

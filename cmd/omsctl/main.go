// omsctl 订单管理后台命令行客户端
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

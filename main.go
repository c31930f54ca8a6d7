package main

import (
	"github.com/mj1618/hostctl/cmd"

	_ "github.com/mj1618/hostctl/internal/platform/win32"
	_ "github.com/mj1618/hostctl/internal/platform/wsl"
)

func main() {
	cmd.Execute()
}

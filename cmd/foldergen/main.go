package main

import (
	"os"

	"github.com/spf13/afero"
	"github.com/yuuki/foldergen/internal/cli"
	"github.com/yuuki/foldergen/internal/identity"
)

func main() {
	cmd := cli.NewRootCommand(afero.NewOsFs(), identity.NewHost())
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

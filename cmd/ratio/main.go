// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ratio evaluates exact rational expressions from the command line.
package main

import (
	"os"

	"github.com/db47h/ratio/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewRootCommand()))
}

// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The webglutil command builds and packages WebGL programs for the browser.

Usage:

	webglutil [flags] <package>

The package is built with GOOS=js GOARCH=wasm into an output directory
together with wasm_exec.js from GOROOT and an index.html with a full window
<canvas id="webgl"> element.

The -o flag specifies the output directory. The default is the last element
of the package path.

The -icon flag specifies a PNG, JPEG or GIF image to scale into the
favicon.png of the page.

The -serve flag serves the output directory on the given address after
building, for example -serve localhost:8080.

The -x flag prints the commands as they are run.

The -v flag enables debug logging.
`

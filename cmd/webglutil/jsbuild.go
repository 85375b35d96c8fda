// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"text/template"

	"golang.org/x/sync/errgroup"
)

const faviconName = "favicon.png"

func buildJS(bi *buildInfo) error {
	if err := os.MkdirAll(bi.out, 0700); err != nil {
		return err
	}
	var steps errgroup.Group
	steps.Go(func() error {
		cmd := exec.Command(
			"go",
			"build",
			"-o", filepath.Join(bi.out, "main.wasm"),
			bi.pkg,
		)
		cmd.Env = append(
			os.Environ(),
			"GOOS=js",
			"GOARCH=wasm",
		)
		_, err := runCmd(cmd)
		return err
	})
	steps.Go(func() error {
		goroot, err := runCmd(exec.Command("go", "env", "GOROOT"))
		if err != nil {
			return err
		}
		wasmJS, err := findWasmExec(goroot)
		if err != nil {
			return err
		}
		return copyFile(filepath.Join(bi.out, "wasm_exec.js"), wasmJS)
	})
	icon := ""
	if bi.icon != "" {
		icon = faviconName
		steps.Go(func() error {
			return buildFavicon(filepath.Join(bi.out, faviconName), bi.icon)
		})
	}
	steps.Go(func() error {
		return writeIndex(filepath.Join(bi.out, "index.html"), bi.name, icon)
	})
	return steps.Wait()
}

// findWasmExec locates the wasm_exec.js support file. It moved from
// misc/wasm to lib/wasm in Go 1.24.
func findWasmExec(goroot string) (string, error) {
	for _, dir := range []string{"lib", "misc"} {
		p := filepath.Join(goroot, dir, "wasm", "wasm_exec.js")
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("failed to find wasm_exec.js in %s/lib/wasm or %s/misc/wasm", goroot, goroot)
}

func writeIndex(path, name, icon string) error {
	t, err := template.New("").Parse(jsIndex)
	if err != nil {
		return err
	}
	var b bytes.Buffer
	if err := t.Execute(&b, struct {
		Name string
		Icon string
	}{
		Name: name,
		Icon: icon,
	}); err != nil {
		return err
	}
	return os.WriteFile(path, b.Bytes(), 0600)
}

func copyFile(dst, src string) (err error) {
	r, err := os.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()
	w, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = io.Copy(w, r)
	return err
}

const jsIndex = `<!doctype html>
<html>
	<head>
		<meta charset="utf-8">
		<meta name="viewport" content="width=device-width, user-scalable=no">
		{{ if .Icon }}<link rel="icon" href="{{.Icon}}" type="image/png" />{{ end }}
		{{ if .Name }}<title>{{.Name}}</title>{{ end }}
		<script src="wasm_exec.js"></script>
		<style>
			body { margin:0;padding:0; }
			#webgl { position:fixed;width:100%;height:100%; }
		</style>
	</head>
	<body>
		<canvas id="webgl"></canvas>
		<script>
			const go = new Go();
			WebAssembly.instantiateStreaming(fetch("main.wasm"), go.importObject).then((result) => {
				go.run(result.instance);
			});
		</script>
	</body>
</html>`

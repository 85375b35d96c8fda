// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"

	"go.uber.org/zap"
)

var (
	destPath      = flag.String("o", "", "output directory.")
	iconPath      = flag.String("icon", "", "image to use as favicon.")
	serveAddr     = flag.String("serve", "", "serve the output directory on this address.")
	printCommands = flag.Bool("x", false, "print the commands")
	verbose       = flag.Bool("v", false, "enable debug logging")
)

type buildInfo struct {
	name    string
	pkg     string
	pkgPath string
	out     string
	icon    string
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "webglutil: %v\n", err)
		os.Exit(1)
	}
	undo := zap.ReplaceGlobals(logger)
	err = mainErr()
	undo()
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "webglutil: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func mainErr() error {
	pkg := flag.Arg(0)
	if pkg == "" {
		return errors.New("specify a package")
	}
	pkgPath, err := runCmd(exec.Command("go", "list", "-f", "{{.ImportPath}}", pkg))
	if err != nil {
		return err
	}
	bi := newBuildInfo(pkg, pkgPath, *destPath, *iconPath)
	if err := buildJS(bi); err != nil {
		return err
	}
	zap.L().Info("built", zap.String("package", bi.pkgPath), zap.String("dir", bi.out))
	if *serveAddr == "" {
		return nil
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return serve(ctx, *serveAddr, bi.out)
}

func newBuildInfo(pkg, pkgPath, out, icon string) *buildInfo {
	elems := strings.Split(pkgPath, "/")
	name := elems[len(elems)-1]
	if out == "" {
		out = name
	}
	return &buildInfo{
		name:    name,
		pkg:     pkg,
		pkgPath: pkgPath,
		out:     out,
		icon:    icon,
	}
}

func runCmdRaw(cmd *exec.Cmd) ([]byte, error) {
	if *printCommands {
		fmt.Printf("%s\n", strings.Join(cmd.Args, " "))
	}
	zap.L().Debug("exec", zap.Strings("args", cmd.Args))
	out, err := cmd.Output()
	if err == nil {
		return out, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, fmt.Errorf("%s failed: %s%s", strings.Join(cmd.Args, " "), out, exitErr.Stderr)
	}
	return nil, err
}

func runCmd(cmd *exec.Cmd) (string, error) {
	out, err := runCmdRaw(cmd)
	return string(bytes.TrimSpace(out)), err
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/viant/afs"
	"github.com/viant/pdbscope/config"
	"github.com/viant/pdbscope/debuginfo"
	"github.com/viant/pdbscope/export"
	"github.com/viant/pdbscope/metadata"
	"github.com/viant/pdbscope/reader"
	"github.com/viant/pdbscope/signature"
)

func main() {
	imageURL := flag.String("image", "", "metadata image YAML location")
	configURL := flag.String("config", "", "config YAML location")
	output := flag.String("out", "", "export destination, overrides config output")
	flag.Parse()
	if *imageURL == "" {
		fmt.Fprintln(os.Stderr, "usage: pdbscope -image image.yaml [-config config.yaml] [-out scopes.yaml]")
		os.Exit(2)
	}
	if err := run(context.Background(), afs.New(), *imageURL, *configURL, *output); err != nil {
		fmt.Fprintf(os.Stderr, "pdbscope: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, fs afs.Service, imageURL, configURL, output string) error {
	cfg := config.DefaultConfig()
	if configURL != "" {
		var err error
		if cfg, err = config.Load(ctx, fs, configURL); err != nil {
			return err
		}
	}
	if output != "" {
		cfg.Output = output
	}
	image, err := metadata.LoadImage(ctx, fs, imageURL)
	if err != nil {
		return err
	}
	store, err := image.Build()
	if err != nil {
		return fmt.Errorf("failed to build image %v: %w", imageURL, err)
	}
	module, err := signature.NewTypeTableFromEntries(image.Types)
	if err != nil {
		return fmt.Errorf("failed to build type table: %w", err)
	}
	scopeReader := reader.New(store, debuginfo.NewResolver(store), reader.WithConfig(cfg))
	var methods []*export.Method
	for _, method := range selectMethods(image, cfg) {
		symbolMethod, err := scopeReader.ReadMethod(method.Rid, method.Name)
		if err != nil {
			return err
		}
		exported, err := export.Build(symbolMethod, &export.Options{Module: module, SkipConstants: cfg.SkipConstants})
		if err != nil {
			return fmt.Errorf("failed to export method %d: %w", method.Rid, err)
		}
		methods = append(methods, exported)
	}
	return export.Write(ctx, fs, cfg.Output, methods)
}

// selectMethods returns configured methods, image methods or every method owning a scope
func selectMethods(image *metadata.Image, cfg *config.Config) []metadata.ImageMethod {
	names := map[uint32]string{}
	var rids []uint32
	for _, method := range image.Methods {
		if _, ok := names[method.Rid]; !ok {
			rids = append(rids, method.Rid)
		}
		names[method.Rid] = method.Name
	}
	if len(rids) == 0 {
		for _, scope := range image.LocalScopes {
			if _, ok := names[scope.Method]; !ok {
				names[scope.Method] = ""
				rids = append(rids, scope.Method)
			}
		}
	}
	if len(cfg.Methods) > 0 {
		rids = cfg.Methods
	}
	var ret []metadata.ImageMethod
	for _, rid := range rids {
		ret = append(ret, metadata.ImageMethod{Rid: rid, Name: names[rid]})
	}
	return ret
}

package config_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/walteh/varsubst/pkg/config"
)

func ExampleLoad_yaml() {
	ctx := context.Background()
	manifest := `
service: demo
custom:
  varSubstitution:
    pattern: "##"
    variables:
      - stage
      - search: bucket
        replace: my-bucket
`

	dir, err := os.MkdirTemp("", "varsubst-example")
	if err != nil {
		fmt.Printf("Error creating dir: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "serverless.yml")
	if err := os.WriteFile(path, []byte(manifest), 0644); err != nil {
		fmt.Printf("Error writing manifest: %v\n", err)
		return
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		fmt.Printf("Error loading manifest: %v\n", err)
		return
	}

	fmt.Println(cfg)
	for _, rule := range cfg.Rules() {
		fmt.Println(rule)
	}

	// Output:
	// pattern "##", 2 variables
	// "stage" -> "${stage}"
	// "bucket" -> "my-bucket"
}

func ExampleDefault() {
	cfg := config.Default()
	fmt.Printf("pattern=%s rules=%d\n", cfg.Pattern, len(cfg.Rules()))

	// Output:
	// pattern=## rules=0
}

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Regenerates the gomock files that live next to the interfaces they mock.
// Only internal/app is scanned: handlers declare the narrow interfaces they depend on.
//
// go run ./deployment/ci/gen_mocks
func main() {
	const root = "internal/app"
	const numWorkers = 4

	start := time.Now()
	files := make(chan string, 32)

	var wg sync.WaitGroup
	var failed bool
	var mu sync.Mutex

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range files {
				if err := generate(path); err != nil {
					mu.Lock()
					failed = true
					mu.Unlock()
					fmt.Fprintf(os.Stderr, "Error generating mock for %s: %v\n", path, err)
					continue
				}
				fmt.Printf("Mock generated: %s\n", mockPath(path))
			}
		}()
	}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".go" {
			return nil
		}

		name := filepath.Base(path)
		if strings.HasSuffix(name, "_test.go") || strings.HasPrefix(name, "mock_") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if strings.Contains(string(content), "interface {") {
			files <- path
		}
		return nil
	})
	close(files)
	wg.Wait()

	if err != nil {
		fmt.Fprintf(os.Stderr, "walk %s: %v\n", root, err)
		os.Exit(1)
	}
	if failed {
		os.Exit(1)
	}

	fmt.Printf("\nTotal execution time: %s\n", time.Since(start))
}

func mockPath(source string) string {
	return filepath.Join(filepath.Dir(source), "mock_"+filepath.Base(source))
}

func generate(source string) error {
	pkg := filepath.Base(filepath.Dir(source))
	cmd := exec.Command("go", "run", "go.uber.org/mock/mockgen@v0.5.2",
		"-source="+source,
		"-destination="+mockPath(source),
		"-package="+pkg,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s", err, out)
	}
	return nil
}

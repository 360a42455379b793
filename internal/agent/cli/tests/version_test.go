package tests

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-users-items-api/internal/agent/cli"
)

func TestVersionCmd_PrintsBuildAndServer(t *testing.T) {
	app := &cli.App{ServerURL: "http://127.0.0.1:9000"}
	cmd := cli.NewVersionCmd(app, "1.2.3", "2024-01-01")

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out.String())
	}
	if !strings.HasPrefix(lines[0], "crudctl 1.2.3 (built 2024-01-01, "+runtime.Version()) {
		t.Fatalf("unexpected build line %q", lines[0])
	}
	if lines[1] != "server: http://127.0.0.1:9000" {
		t.Fatalf("unexpected server line %q", lines[1])
	}
}

func TestVersionCmd_ServerFlagFromRoot(t *testing.T) {
	root := cli.NewRootCmd("dev", "unknown")

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--server", "http://remote:3000", "version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "server: http://remote:3000") {
		t.Fatalf("expected --server in output, got %q", out.String())
	}
}

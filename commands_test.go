package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCmd_HasAllSubcommands(t *testing.T) {
	root := newRootCmd()

	want := []string{"ideas", "script", "pipeline", "upload", "analytics", "shorten", "schedule"}
	have := make(map[string]bool)
	for _, c := range root.Commands() {
		have[c.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestUploadCmd_RequiresVideoAndTitle(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	root.SetArgs([]string{"upload"})
	err := root.Execute()
	if err == nil {
		t.Fatal("upload with no flags error = nil, want required-flag error")
	}
	if !strings.Contains(err.Error(), "--video") || !strings.Contains(err.Error(), "--title") {
		t.Errorf("error = %v, want it to name --video and --title", err)
	}
}

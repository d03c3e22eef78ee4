package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kmerkit/pkg/api"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestRevCompLiteral(t *testing.T) {
	code, out, errOut := run(t, "revcomp", "--seq", "ATGC")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errOut)
	}
	want := "input_id\tsequence\treverse_complement\narg:1\tATGC\tGCAT\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestRevCompLookupError(t *testing.T) {
	code, _, errOut := run(t, "rc", "--seq", "acgt")
	if code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if !strings.Contains(errOut, "error:") || !strings.Contains(errOut, "arg:1") {
		t.Fatalf("stderr should name the input: %q", errOut)
	}
}

func TestKmersFromFile(t *testing.T) {
	fa := write(t, "in.txt", "GTACGTACC\n")
	code, out, errOut := run(t, "kmers", "-k", "2", "--no-header", fa)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errOut)
	}
	id := fa + ":1"
	want := id + "\tGT\t2\n" + id + "\tTA\t2\n" + id + "\tAC\t2\n" + id + "\tCG\t1\n" + id + "\tCC\t1\n"
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestKmersTopYAML(t *testing.T) {
	code, out, errOut := run(t, "kmers", "--seq", "GTACGTACC", "-k", "1", "--top", "1", "-o", "yaml")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errOut)
	}
	if !strings.Contains(out, "C: 3") || strings.Contains(out, "G: 2") {
		t.Fatalf("top=1 should keep only C:\n%s", out)
	}
}

func TestKmersBadK(t *testing.T) {
	code, _, errOut := run(t, "kmers", "--seq", "ACGT", "-k", "0")
	if code != 2 || !strings.Contains(errOut, "kmers.k") {
		t.Fatalf("exit %d stderr %q", code, errOut)
	}
}

func TestKmersWarnsWhenKTooLong(t *testing.T) {
	code, out, errOut := run(t, "kmers", "--seq", "ACG", "-k", "4", "--no-header")
	if code != 0 || out != "" {
		t.Fatalf("exit %d out %q", code, out)
	}
	if !strings.Contains(errOut, "kmers.k_exceeds_sequence") {
		t.Fatalf("expected warning, got %q", errOut)
	}
	_, _, quiet := run(t, "kmers", "--seq", "ACG", "-k", "4", "-q")
	if quiet != "" {
		t.Fatalf("--quiet should silence warnings, got %q", quiet)
	}
}

func TestReadsSeededJSONL(t *testing.T) {
	args := []string{"reads", "--seq", "ACGTTGCAACGGTA", "-n", "3", "-l", "4", "--seed", "5", "-o", "jsonl"}
	code, out, errOut := run(t, args...)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errOut)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 reads, got %d: %q", len(lines), out)
	}
	for i, ln := range lines {
		var r api.ReadV1
		if err := json.Unmarshal([]byte(ln), &r); err != nil {
			t.Fatalf("line %d: %v", i, err)
		}
		if r.Index != i || r.Length != 4 || len(r.Seq) != 4 || "ACGTTGCAACGGTA"[r.Start:r.Start+4] != r.Seq {
			t.Fatalf("bad read %+v", r)
		}
	}
	if _, again, _ := run(t, args...); again != out {
		t.Fatalf("same seed, different output:\n%s\n%s", out, again)
	}
}

func TestReadsLongerThanGenome(t *testing.T) {
	code, _, errOut := run(t, "reads", "--seq", "ACG", "-l", "5")
	if code != 2 || !strings.Contains(errOut, "exceeds genome length") {
		t.Fatalf("exit %d stderr %q", code, errOut)
	}
}

func TestNoInput(t *testing.T) {
	code, _, errOut := run(t, "kmers")
	if code != 2 || !strings.Contains(errOut, "provide input") || !strings.Contains(errOut, "Usage:") {
		t.Fatalf("exit %d stderr %q", code, errOut)
	}
}

func TestUnknownFlag(t *testing.T) {
	code, _, errOut := run(t, "kmers", "--bogus")
	if code != 2 || !strings.Contains(errOut, "Usage:") {
		t.Fatalf("exit %d stderr %q", code, errOut)
	}
}

func TestMissingFile(t *testing.T) {
	code, _, _ := run(t, "revcomp", filepath.Join(t.TempDir(), "missing.txt"))
	if code != 3 {
		t.Fatalf("exit %d, want 3", code)
	}
}

func TestVersionAndHelp(t *testing.T) {
	code, out, _ := run(t, "--version")
	if code != 0 || !strings.HasPrefix(out, "kmerkit version ") {
		t.Fatalf("--version: exit %d out %q", code, out)
	}
	code, out, _ = run(t, "version")
	if code != 0 || !strings.Contains(out, "commit=") {
		t.Fatalf("version: exit %d out %q", code, out)
	}
	code, out, _ = run(t)
	if code != 0 || !strings.Contains(out, "Available Commands") {
		t.Fatalf("no args: exit %d out %q", code, out)
	}
}

func TestConfigFileAndEnv(t *testing.T) {
	cfg := write(t, "kmerkit.yaml", "output:\n  format: json\nkmers:\n  k: 4\n")
	code, out, errOut := run(t, "--config", cfg, "kmers", "--seq", "GTACGTACC")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errOut)
	}
	var tables []api.KmerTableV1
	if err := json.Unmarshal([]byte(out), &tables); err != nil {
		t.Fatalf("json: %v\n%s", err, out)
	}
	if len(tables) != 1 || tables[0].K != 4 || tables[0].Counts[0] != (api.KmerEntryV1{Kmer: "GTAC", Count: 2}) {
		t.Fatalf("unexpected table %+v", tables)
	}

	t.Setenv("KMERKIT_OUTPUT_FORMAT", "jsonl")
	_, out, _ = run(t, "revcomp", "--seq", "AC")
	if strings.TrimSpace(out) != `{"input_id":"arg:1","sequence":"AC","reverse_complement":"GT"}` {
		t.Fatalf("env override not applied: %q", out)
	}
}

func TestDebugLogging(t *testing.T) {
	code, _, errOut := run(t, "--log-level", "debug", "--log-json", "kmers", "--seq", "ACGT")
	if code != 0 || !strings.Contains(errOut, `"msg":"kmers.counted"`) {
		t.Fatalf("exit %d stderr %q", code, errOut)
	}
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errBuf bytes.Buffer
	if code := RunContext(ctx, []string{"revcomp", "--seq", "ACGT"}, &out, &errBuf); code != 130 {
		t.Fatalf("exit %d, want 130 (stderr %q)", code, errBuf.String())
	}
}

package remarks_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/walletkit/remarks"
)

func TestAggregate(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		file string
		want string
	}{
		{
			file: "testdata/wallets.txt",
			want: "addrA\t✅✅foo1 foo2\naddrB\tbar",
		},
		{
			file: "testdata/mixed.txt",
			want: "0xc0ffee\t✅✅✅binance2 binance7 cold storage\n" +
				"0xdead\t✅✅✅dex1 dex2 dex3\n" +
				"0xfeed\taaa\n" +
				"0xbeef\tzzz",
		},
		{
			file: "testdata/empty.txt",
			want: "",
		},
		{
			file: "testdata/cr_only.txt",
			want: "addrA\t✅✅foo1 foo2\naddrB\tbar",
		},
	}
	for _, tc := range tcs {
		got, err := remarks.Aggregate(tc.file)
		if err != nil {
			t.Fatal(err)
		}
		if !cmp.Equal(tc.want, got) {
			t.Errorf("%s: %s", tc.file, cmp.Diff(tc.want, got))
		}
	}
}

func TestAggregateRanksMoreLabelsFirst(t *testing.T) {
	t.Parallel()
	path := writeInput(t, "b\tbbb1\nb\tbbb2\na\taaa1\na\taaa2\na\taaa3\nz\tzzz\ny\taaa\n")
	got, err := remarks.Aggregate(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "a\t✅✅✅aaa1 aaa2 aaa3\nb\t✅✅bbb1 bbb2\ny\taaa\nz\tzzz"
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestAggregateEveryAddressOnce(t *testing.T) {
	t.Parallel()
	path := writeInput(t, "a\t1\nb\t2\na\t3\nc\t4\nb\t5\na\t6\nno tab\n")
	got, err := remarks.Aggregate(path)
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]int{}
	for _, line := range strings.Split(got, "\n") {
		address, _, _ := strings.Cut(line, "\t")
		seen[address]++
	}
	want := map[string]int{"a": 1, "b": 1, "c": 1}
	if !cmp.Equal(want, seen) {
		t.Error(cmp.Diff(want, seen))
	}
}

func TestAggregateNotFound(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "missing.txt")
	got, err := remarks.Aggregate(path)
	if got != "" {
		t.Errorf("want no output on error, got %q", got)
	}
	var fe *remarks.FileError
	if !errors.As(err, &fe) {
		t.Fatalf("want *FileError, got %v", err)
	}
	if fe.Kind != remarks.NotFound {
		t.Errorf("want kind %v, got %v", remarks.NotFound, fe.Kind)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("want error to wrap fs.ErrNotExist")
	}
	if fe.Path != path {
		t.Errorf("want path %q, got %q", path, fe.Path)
	}
}

func TestAggregateIOFailure(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		name string
		path string
	}{
		{"directory", t.TempDir()},
		{"invalid UTF-8", "testdata/invalid_utf8.txt"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := remarks.Aggregate(tc.path)
			if got != "" {
				t.Errorf("want no output on error, got %q", got)
			}
			var fe *remarks.FileError
			if !errors.As(err, &fe) {
				t.Fatalf("want *FileError, got %v", err)
			}
			if fe.Kind != remarks.IOFailure {
				t.Errorf("want kind %v, got %v", remarks.IOFailure, fe.Kind)
			}
		})
	}
}

func TestProcess(t *testing.T) {
	t.Parallel()
	want := "addrA\t✅✅foo1 foo2\naddrB\tbar"
	if got := remarks.Process("testdata/wallets.txt"); got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestProcessReportsMissingFile(t *testing.T) {
	t.Parallel()
	got := remarks.Process("testdata/nonexistent.txt")
	want := "error: file 'testdata/nonexistent.txt' not found"
	if got != want {
		t.Errorf("want %q, got %q", want, got)
	}
	if strings.Contains(got, "\n") {
		t.Error("want a single line")
	}
}

func TestProcessReportsReadFailure(t *testing.T) {
	t.Parallel()
	got := remarks.Process("testdata/invalid_utf8.txt")
	want := "error reading file 'testdata/invalid_utf8.txt': line 2: invalid UTF-8"
	if got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()
	g, err := remarks.Open("testdata/wallets.txt")
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 2 {
		t.Errorf("want 2 addresses, got %d", g.Len())
	}
	if _, err := remarks.Open("testdata/nonexistent.txt"); err == nil {
		t.Error("want error opening nonexistent file")
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()
	for k, want := range map[remarks.Kind]string{
		remarks.NotFound:  "not found",
		remarks.IOFailure: "i/o failure",
		remarks.Kind(9):   "Kind(9)",
	} {
		if got := k.String(); got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	}
}

// Not parallel: it changes the working directory, which parallel tests only
// rely on once every serial test has finished.
func TestAggregateReadsFileNamedDash(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "-"), []byte("addrA\tfoo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)
	got, err := remarks.Aggregate("-")
	if err != nil {
		t.Fatal(err)
	}
	if want := "addrA\tfoo"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestReadGroups(t *testing.T) {
	t.Parallel()
	g, err := remarks.ReadGroups(remarks.Echo("addrA\tfoo2\naddrA\tfoo1\n"), "input")
	if err != nil {
		t.Fatal(err)
	}
	if want := "addrA\t✅✅foo1 foo2"; g.Report().String() != want {
		t.Errorf("want %q, got %q", want, g.Report().String())
	}
	_, err = remarks.ReadGroups(remarks.Echo("addrA\t\xff\n"), "input")
	var fe *remarks.FileError
	if !errors.As(err, &fe) {
		t.Fatalf("want *FileError, got %v", err)
	}
	if fe.Kind != remarks.IOFailure || fe.Path != "input" {
		t.Errorf("want IOFailure for %q, got %v for %q", "input", fe.Kind, fe.Path)
	}
}

func writeInput(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wallets.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

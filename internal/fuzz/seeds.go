package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
	maxFuzzInput = 1 << 16  // 64 KiB
)

// markerSeeds cover every marker family plus the usual error shapes.
var markerSeeds = []string{
	"__string__(1 __string__(2 __identity__(3 __string__(4))))",
	"f(__string__(a), [__str__(b)], { __ident__(c d) })",
	"__reverse__(a __head__(b c) d) __tail__(a b) __start__(a b) __last__(a b)",
	"__ignore__ __string__ (x __str__(y)) z __ignore__ __s__ x",
	"__dollar__ x __s__ (y)",
	"__ToCase__(my_var) __TO_CASE__(myVar) __tocase__(My_Var)",
	`__repnl__("a\n   b", " ") __repstr__("a-b-c", "-", "+")`,
	"__stringify__({ x } -> 'a' b\"x\" 0x1F_u8)",
	"__string__",
	"__tail__ x",
	"__ignore__ foo",
	`__str_replace__("a")`,
	`__ident__(1 "x")`,
	"(a]",
	"{ ( [ ",
	"/// doc\n//! inner\n/** block */ x",
	`r#"raw "x""# b'c' br"y" 'a 1.5e-3`,
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range markerSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.place файлы
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".place" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
	f.Add([]byte{})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

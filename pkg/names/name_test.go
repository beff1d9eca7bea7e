package names

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOriginPriorityOrder(t *testing.T) {
	want := []Origin{
		OriginConfigEntryPoint,
		OriginConfigFunction,
		OriginConfigGlobal,
		OriginConfigSegment,
		OriginDebugFunction,
		OriginDebugGlobal,
		OriginEntryPoint,
		OriginImport,
		OriginImportGenerated,
		OriginExport,
		OriginSymbolFunction,
		OriginSymbolObject,
		OriginSymbolFile,
		OriginSymbolOther,
	}
	got := Origins()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	for i := 1; i < len(want); i++ {
		if want[i-1].Rank() >= want[i].Rank() {
			t.Errorf("%v should rank before %v", want[i-1], want[i])
		}
	}
	for _, o := range want {
		if o.Rank() >= OriginInvalid.Rank() {
			t.Errorf("%v should rank before %v", o, OriginInvalid)
		}
	}
}

func TestOriginString(t *testing.T) {
	for _, o := range append(Origins(), OriginInvalid) {
		got, err := ParseOrigin(o.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != o {
			t.Errorf("ParseOrigin(%q): want %v, got %v", o.String(), o, got)
		}
	}
	if _, err := ParseOrigin("bogus"); err == nil {
		t.Error("expected error for unknown origin")
	}
	if got := Origin(99).String(); got != "origin(99)" {
		t.Errorf("out of range origin: got %q", got)
	}
}

func TestNewName(t *testing.T) {
	for name, tc := range map[string]struct {
		text      string
		origin    Origin
		wantText  string
		wantValid bool
	}{
		"degenerate": {},
		"plain": {
			text:      "init",
			origin:    OriginExport,
			wantText:  "init",
			wantValid: true,
		},
		"legacy _main": {
			text:      "_main",
			origin:    OriginSymbolFunction,
			wantText:  "main",
			wantValid: true,
		},
		"legacy _main from config": {
			text:      "_main",
			origin:    OriginConfigFunction,
			wantText:  "main",
			wantValid: true,
		},
		"__main untouched": {
			text:      "__main",
			origin:    OriginExport,
			wantText:  "__main",
			wantValid: true,
		},
		"strips __imp_": {
			text:      "__imp_GetProcAddress",
			origin:    OriginImport,
			wantText:  "GetProcAddress",
			wantValid: true,
		},
		"strips _imp__": {
			text:      "_imp__CreateFileW@28",
			origin:    OriginImport,
			wantText:  "CreateFileW@28",
			wantValid: true,
		},
		"strips _imp_": {
			text:      "_imp_ExitProcess",
			origin:    OriginImport,
			wantText:  "ExitProcess",
			wantValid: true,
		},
		"strips once": {
			text:      "__imp___imp_x",
			origin:    OriginImport,
			wantText:  "__imp_x",
			wantValid: true,
		},
		"prefix then main": {
			text:      "__imp__main",
			origin:    OriginImport,
			wantText:  "main",
			wantValid: true,
		},
		"prefix only": {
			text:   "__imp_",
			origin: OriginImport,
		},
		"invalid origin": {
			text:     "foo",
			origin:   OriginInvalid,
			wantText: "foo",
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := NewName(tc.text, tc.origin)
			if got.Text() != tc.wantText {
				t.Errorf("text: want %q, got %q", tc.wantText, got.Text())
			}
			if got.Origin() != tc.origin {
				t.Errorf("origin: want %v, got %v", tc.origin, got.Origin())
			}
			if got.IsValid() != tc.wantValid {
				t.Errorf("valid: want %v, got %v", tc.wantValid, got.IsValid())
			}
		})
	}
}

func TestEmptyName(t *testing.T) {
	if EmptyName.IsValid() {
		t.Error("EmptyName must not be valid")
	}
	if EmptyName.Text() != "" {
		t.Errorf("EmptyName text: %q", EmptyName.Text())
	}
	if EmptyName != (Name{}) {
		t.Error("EmptyName must be the zero Name")
	}
}

func TestCompare(t *testing.T) {
	in := []Name{
		NewName("b", OriginExport),
		NewName("z", OriginSymbolOther),
		NewName("a", OriginExport),
		NewName("zzz", OriginConfigFunction),
		NewName("x", OriginInvalid),
		NewName("entry_point", OriginConfigEntryPoint),
		NewName("a", OriginImport),
	}
	want := []Name{
		NewName("entry_point", OriginConfigEntryPoint),
		NewName("zzz", OriginConfigFunction),
		NewName("a", OriginImport),
		NewName("a", OriginExport),
		NewName("b", OriginExport),
		NewName("z", OriginSymbolOther),
		NewName("x", OriginInvalid),
	}
	got := slices.Clone(in)
	slices.SortFunc(got, Compare)
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(Name{})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	a := NewName("a", OriginExport)
	if Compare(a, a) != 0 || a.Less(a) {
		t.Error("a name must equal itself")
	}
	if !NewName("b", OriginImport).Less(NewName("a", OriginExport)) {
		t.Error("origin rank must win over text")
	}
}

func TestGeneratedNames(t *testing.T) {
	for name, tc := range map[string]struct {
		got  string
		want string
	}{
		"import":          {got: GenerateImportName(7), want: "imported_function_ord_7"},
		"import zero":     {got: GenerateImportName(0), want: "imported_function_ord_0"},
		"function":        {got: GenerateFunctionName(0x401000, false), want: "function_401000"},
		"function ida":    {got: GenerateFunctionName(0xABC, true), want: "sub_abc"},
		"basic block":     {got: GenerateBasicBlockName(0x10), want: "dec_label_pc_10"},
		"address string":  {got: Address(0x1f).String(), want: "0x1f"},
		"undefined":       {got: UndefinedAddress.String(), want: "undefined"},
		"entry point":     {got: EntryPointName, want: "entry_point"},
		"symbol file tag": {got: SymbolUsageFile.Origin().String(), want: "symbol_file"},
	} {
		t.Run(name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("want %q, got %q", tc.want, tc.got)
			}
		})
	}
}

func TestParseAddress(t *testing.T) {
	for name, tc := range map[string]struct {
		in      string
		want    Address
		wantErr bool
	}{
		"hex":                 {in: "0x1000", want: 0x1000},
		"upper case hex":      {in: "0X1F", want: 0x1f},
		"decimal":             {in: "4096", want: 4096},
		"zero padded decimal": {in: "0100", want: 100},
		"zero":                {in: "0", want: 0},
		"underscores":         {in: "1_000", want: UndefinedAddress, wantErr: true},
		"octal prefix":        {in: "0o17", want: UndefinedAddress, wantErr: true},
		"bare prefix":         {in: "0x", want: UndefinedAddress, wantErr: true},
		"garbage":             {in: "zz", want: UndefinedAddress, wantErr: true},
		"empty":               {in: "", want: UndefinedAddress, wantErr: true},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAddress(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err: %v", err)
			}
			if got != tc.want {
				t.Errorf("want %v, got %v", tc.want, got)
			}
		})
	}
}

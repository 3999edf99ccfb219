package sandboxes

import (
	"strings"
	"testing"
)

func TestPrimitives(t *testing.T) {
	sandbox := testNew(t)(nil)
	for _, c := range []struct {
		src  string
		want string
	}{
		{`print(pow(2, 10))`, "1024\n"},
		{`print(pow(2, -1))`, "0.5\n"},
		{`print(pow(2.0, 3))`, "8.0\n"},
		{`print(round(7.4161984, 3))`, "7.416\n"},
		{`print(round(2.5))`, "3\n"},
		{`print(round(7))`, "7\n"},
		{`print(sum([1, 2, 3]))`, "6\n"},
		{`print(sum([1, 2], 10))`, "13\n"},
		{`print(sum([1.5, 2.5]))`, "4.0\n"},
		{`print(sum([]))`, "0\n"},
		{`print(divmod(7, 3))`, "(2, 1)\n"},
		{`print(divmod(-7, 3))`, "(-3, 2)\n"},
	} {
		out, err := sandbox.Execute(t.Context(), c.src)
		if err != nil {
			t.Fatal(err)
		}
		if out != c.want {
			t.Fatalf("%s: got %q", c.src, out)
		}
	}
}

func TestPowBigExponent(t *testing.T) {
	sandbox := testNew(t)(nil)
	out, err := sandbox.Execute(t.Context(), `print(len(str(pow(2, 256))))`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "78\n" {
		t.Fatalf("got %q", out)
	}
}

func TestDivmodByZero(t *testing.T) {
	sandbox := testNew(t)(nil)
	out, err := sandbox.Execute(t.Context(), `divmod(1, 0)`)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "division by zero") {
		t.Fatalf("got %q", out)
	}
}

func TestSumTypeError(t *testing.T) {
	sandbox := testNew(t)(nil)
	out, err := sandbox.Execute(t.Context(), `sum(["a", "b"])`)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "cannot add") {
		t.Fatalf("got %q", out)
	}
}

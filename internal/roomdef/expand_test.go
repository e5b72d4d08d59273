package roomdef

import (
	"reflect"
	"testing"
)

func TestExpandObjectLiteral(t *testing.T) {
	got, err := ExpandObject([]byte{5, 0, 6}, 0, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []TileWrite{{0, 0, 5}, {2, 0, 6}} // tile 0x00 is transparent, skips the cell
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestExpandObjectAscendingRun(t *testing.T) {
	got, err := ExpandObject([]byte{0xFF, 0x43, 10}, 0, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []TileWrite{{0, 0, 10}, {1, 0, 11}, {2, 0, 12}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestExpandObjectRepeatRun(t *testing.T) {
	got, err := ExpandObject([]byte{0xFF, 0x83, 9}, 0, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []TileWrite{{0, 0, 9}, {1, 0, 9}, {2, 0, 9}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestExpandObjectLiteralFF(t *testing.T) {
	got, err := ExpandObject([]byte{0xFF, 0xFF}, 0, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []TileWrite{{0, 0, 0xFF}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestExpandObjectWrapsToNextRow(t *testing.T) {
	got, err := ExpandObject([]byte{1, 2, 3}, 8, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []TileWrite{{8, 0, 1}, {9, 0, 2}, {0, 1, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestExpandObjectTruncatedEscape(t *testing.T) {
	if _, err := ExpandObject([]byte{0xFF}, 0, 0, 10); err == nil {
		t.Fatalf("expected error on truncated escape sequence")
	}
}

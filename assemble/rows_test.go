package assemble

import (
	"testing"

	"github.com/farajfarook/pdf2md/model"
)

func TestOrderBlocksReadingOrder(t *testing.T) {
	blocks := []model.TextBlock{
		makeBlock(300, 100, 400, 112, "right", model.RoleParagraph),
		makeBlock(10, 200, 110, 212, "below", model.RoleParagraph),
		makeBlock(10, 102, 110, 114, "left", model.RoleParagraph),
	}

	ordered := orderBlocks(blocks, 5)

	want := []string{"left", "right", "below"}
	for i, text := range want {
		if ordered[i].Text != text {
			t.Errorf("Expected %q at position %d, got %q", text, i, ordered[i].Text)
		}
	}
	if ordered[0].row != ordered[1].row {
		t.Error("Expected blocks within epsilon to share a row")
	}
	if ordered[2].row == ordered[0].row {
		t.Error("Expected the lower block on its own row")
	}
}

func TestOrderBlocksRowAnchoring(t *testing.T) {
	// Tops at 100, 104, 108 with eps 5: grouping anchors to the first block
	// of the row, so 108 starts a new row instead of chaining through 104.
	blocks := []model.TextBlock{
		makeBlock(0, 100, 50, 110, "a", model.RoleParagraph),
		makeBlock(60, 104, 110, 114, "b", model.RoleParagraph),
		makeBlock(0, 108, 50, 118, "c", model.RoleParagraph),
	}

	ordered := orderBlocks(blocks, 5)

	if ordered[0].row != ordered[1].row {
		t.Error("Expected tops 100 and 104 to share a row")
	}
	if ordered[2].row == ordered[0].row {
		t.Error("Expected top 108 on a new row")
	}
	if ordered[2].Text != "c" {
		t.Errorf("Expected c last, got %q", ordered[2].Text)
	}
}

func TestOrderBlocksStableOnTies(t *testing.T) {
	blocks := []model.TextBlock{
		makeBlock(10, 100, 110, 112, "first", model.RoleParagraph),
		makeBlock(10, 100, 110, 112, "second", model.RoleParagraph),
	}

	ordered := orderBlocks(blocks, 5)

	if ordered[0].Text != "first" || ordered[1].Text != "second" {
		t.Errorf("Expected input order preserved for identical geometry, got %q then %q",
			ordered[0].Text, ordered[1].Text)
	}
}

func TestAutoEpsilon(t *testing.T) {
	blocks := []model.TextBlock{
		makeBlock(0, 0, 100, 10, "a", model.RoleParagraph),  // height 10
		makeBlock(0, 20, 100, 32, "b", model.RoleParagraph), // height 12
		makeBlock(0, 40, 100, 54, "c", model.RoleParagraph), // height 14
	}

	if got := autoEpsilon(blocks); got != 6 {
		t.Errorf("Expected half the median height (6), got %f", got)
	}

	even := blocks[:2]
	if got := autoEpsilon(even); got != 5.5 {
		t.Errorf("Expected 5.5 for even count, got %f", got)
	}

	if got := autoEpsilon(nil); got != 0 {
		t.Errorf("Expected 0 for no blocks, got %f", got)
	}
}

package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowscan-io/flowscan/internal/findings"
	"github.com/flowscan-io/flowscan/internal/flow"
	"github.com/flowscan-io/flowscan/internal/graph"
)

func TestCopyNames(t *testing.T) {
	doc := &flow.Document{
		Name:     "t",
		Start:    "Copy_of_Update_Account",
		Declared: []string{"Copy_2_of_varTotal", "varAmount"},
		Elements: []flow.Element{
			{Name: "Copy_of_Update_Account", Kind: flow.KindWrite, Write: flow.WriteUpdate},
			{Name: "Send_Notification", Kind: flow.KindExternalCall},
		},
	}
	got := CopyNames(doc, graph.Build(doc))

	assert.Len(t, got, 2)
	assert.Equal(t, "Copy_of_Update_Account", got[0].Element)
	assert.Equal(t, "Copy_2_of_varTotal", got[1].Element)
	for _, f := range got {
		assert.Equal(t, findings.CopyName, f.Category)
		assert.Equal(t, findings.SeverityLow, f.Severity)
	}
}

func TestCopyNamesCaseInsensitive(t *testing.T) {
	doc := &flow.Document{
		Name:  "t",
		Start: "COPY_OF_Step",
		Elements: []flow.Element{
			{Name: "COPY_OF_Step", Kind: flow.KindScreen},
		},
	}
	got := CopyNames(doc, graph.Build(doc))
	assert.Len(t, got, 1)
}

func TestCopyNamesSubstringNotFlagged(t *testing.T) {
	// The prefix must anchor at the start; names that merely contain it pass.
	doc := &flow.Document{
		Name:  "t",
		Start: "Make_Copy_of_Record",
		Elements: []flow.Element{
			{Name: "Make_Copy_of_Record", Kind: flow.KindAssignment},
		},
	}
	got := CopyNames(doc, graph.Build(doc))
	assert.Empty(t, got)
}

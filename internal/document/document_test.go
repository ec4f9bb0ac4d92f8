package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowscan-io/flowscan/internal/flow"
)

const sampleDocument = `{
  "name": "Order_Followup",
  "start": "Loop_Items",
  "trigger_type": "recordAfterSave",
  "trigger_object": "Order",
  "declared": ["varTotal"],
  "elements": [
    {
      "name": "Loop_Items",
      "kind": "loop",
      "loop_body_target": "Add_Item",
      "loop_exit_target": "Update_Order"
    },
    {
      "name": "Add_Item",
      "kind": "assignment",
      "referenced_ids": ["varTotal"],
      "outgoing": [{"target": "Loop_Items"}]
    },
    {
      "name": "Update_Order",
      "kind": "write",
      "write": "update",
      "target_object": "Order"
    }
  ]
}`

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleDocument))
	require.NoError(t, err)

	assert.Equal(t, "Order_Followup", doc.Name)
	assert.Equal(t, flow.TriggerAfterSave, doc.TriggerType)
	assert.Len(t, doc.Elements, 3)
	assert.Equal(t, flow.KindLoop, doc.Elements[0].Kind)
	assert.Equal(t, "Add_Item", doc.Elements[0].LoopBodyTarget)
}

func TestDecodeNormalizesEdgeKind(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleDocument))
	require.NoError(t, err)

	// The sample omits the edge kind; normalization makes it explicit.
	assert.Equal(t, flow.EdgeDefault, doc.Elements[1].Outgoing[0].Kind)
}

func TestDecodeUnknownFieldRejected(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"name": "t", "bogus": true}`))
	assert.Error(t, err)
}

func TestDecodeMissingName(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"start": "First", "elements": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no name")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Order_Followup", doc.Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

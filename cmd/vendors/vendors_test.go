package vendors

import (
	"bytes"
	"testing"

	"fjacquet/trade-invoice-csv/internal/vendor"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, Write(cmd, vendor.Default()))

	text := out.String()
	assert.Contains(t, text, "SCREWFIX")
	assert.Contains(t, text, "DD/MM/YYYY")
	assert.Contains(t, text, "name -8, units -8, unit cost -7")
	assert.Contains(t, text, "TOOLSTATION")
	assert.Contains(t, text, "YYYY-MM-DD")
	assert.Contains(t, text, `(?!.*00037)`)
	assert.Contains(t, text, "unit price (last)")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("SCREWFIX")), bytes.Index(out.Bytes(), []byte("TOOLSTATION")))
}

func TestVendorsFunc_NoContainer(t *testing.T) {
	assert.Error(t, vendorsFunc(&cobra.Command{}, nil))
}

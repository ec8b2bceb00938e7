package flag

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGRPCAddr_DefaultsAndOverrides(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	var addr string
	GRPCAddr(cmd, &addr)

	require.NoError(t, cmd.Flags().Parse(nil))
	assert.Equal(t, "0.0.0.0:50051", addr)

	require.NoError(t, cmd.Flags().Parse([]string{"--grpc-addr", "127.0.0.1:9999"}))
	assert.Equal(t, "127.0.0.1:9999", addr)
}

package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/pinvault/internal/client/client"
	"github.com/dmitrijs2005/pinvault/internal/client/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	a, err := NewApp(&config.Config{ServerEndpointAddr: "127.0.0.1:1"})
	require.NoError(t, err)
	require.NotNil(t, a.client)
	assert.False(t, a.isLoggedIn())
	require.NoError(t, a.client.Close())
}

func TestRun_ReportsUnreachableServerAndExits(t *testing.T) {
	printed := capturePrint(t)

	fc := &fakeClient{err: client.ErrUnavailable}
	a, _ := newTestApp(fc, "exit")

	a.Run(context.Background())

	assert.Contains(t, *printed, "Server test:1 is not reachable: server unavailable, try again")
	assert.Contains(t, *printed, "Bye!")
}

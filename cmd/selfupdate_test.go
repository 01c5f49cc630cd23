package cmd

import (
	"testing"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfUpdateRefusesDevelopmentBuilds(t *testing.T) {
	original := rootCmd.Version
	t.Cleanup(func() { SetVersion(original) })

	for _, version := range []string{"", "dev"} {
		t.Run("version "+version, func(t *testing.T) {
			SetVersion(version)

			err := runSelfUpdate(nil, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "cannot self-update a development version")
			assert.Contains(t, err.Error(), `"`+version+`"`)
		})
	}
}

func TestSelfUpdateThroughRoot(t *testing.T) {
	original := rootCmd.Version
	t.Cleanup(func() { SetVersion(original) })
	SetVersion("dev")

	_, err := executeCommand(t, "self-update")
	assert.ErrorContains(t, err, "cannot self-update a development version")

	_, err = executeCommand(t, "self-update", "v1.0.0")
	assert.Error(t, err, "self-update takes no arguments")
}

func TestReleaseRepository(t *testing.T) {
	owner, repo, err := selfupdate.ParseSlug(githubRepoSlug).GetSlug()
	require.NoError(t, err)
	assert.Equal(t, "anchovy-design", owner)
	assert.Equal(t, "anchovy", repo)
}

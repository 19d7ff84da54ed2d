package cli

import (
	"github.com/m-mizutani/fireconf"
)

// DefineFirestoreIndexes exposes defineFirestoreIndexes for testing
func DefineFirestoreIndexes() *fireconf.Config {
	return defineFirestoreIndexes()
}

var (
	GenerateBaseURL    = generateBaseURL
	ParseCategory      = parseCategory
	ReadNotification   = readNotification
	MergeSettingsInput = mergeSettingsInput
	DisplaySettings    = displaySettings
	BuildSetupInput    = buildSetupInput
	SeedMemory         = seedMemory
)

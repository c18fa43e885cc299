// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/hyperledger/iroha-sub006/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from the configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "iroha"

	defaultBlockStoreBackend = "leveldb"
	defaultBlockStoreDir     = "blocks"

	defaultBlockRate   = 100.0 // downloaded blocks per second
	defaultPeerTimeout = "30s"

	defaultLogDirectory = "log"
	defaultLogFile      = "irohad.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "critical",
}

// DatabaseType - where the world state databases live
type DatabaseType struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

// BlockStoreType - which block storage backend to run with
type BlockStoreType struct {
	Backend   string `gluamapper:"backend"`
	Directory string `gluamapper:"directory"`
	CacheSize int    `gluamapper:"cache_size"`
}

// SynchroniserType - download tuning
type SynchroniserType struct {
	BlockRate   float64 `gluamapper:"block_rate"`
	PeerTimeout string  `gluamapper:"peer_timeout"`
}

// Configuration - the full node configuration
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory"`
	PidFile       string               `gluamapper:"pidfile"`
	Database      DatabaseType         `gluamapper:"database"`
	BlockStore    BlockStoreType       `gluamapper:"block_store"`
	Synchroniser  SynchroniserType     `gluamapper:"synchroniser"`
	Logging       logger.Configuration `gluamapper:"logging"`
}

// DatabasePrefix - full path prefix handed to storage.Initialise
func (c *Configuration) DatabasePrefix() string {
	return filepath.Join(c.Database.Directory, c.Database.Name)
}

// PeerTimeout - the parsed per-peer download budget
func (c *Configuration) PeerTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Synchroniser.PeerTimeout)
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		BlockStore: BlockStoreType{
			Backend:   defaultBlockStoreBackend,
			Directory: defaultBlockStoreDir,
		},

		Synchroniser: SynchroniserType{
			BlockRate:   defaultBlockRate,
			PeerTimeout: defaultPeerTimeout,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	switch options.BlockStore.Backend {
	case "memory", "file", "leveldb":
	default:
		return nil, fault.ErrInvalidBlockStoreName
	}

	if _, err := options.PeerTimeout(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.BlockStore.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths
	mustBeAbsoluteOrBlank := []*string{
		&options.PidFile,
	}
	for _, f := range mustBeAbsoluteOrBlank {
		if "" != *f {
			*f = ensureAbsolute(options.DataDirectory, *f)
		}
	}

	return options, nil
}

// ensureAbsolute - prepend the directory if the path is relative
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

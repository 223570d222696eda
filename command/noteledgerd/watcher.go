// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/noteledger/background"
	"github.com/bitmark-inc/noteledger/identity"
)

const (
	watcherLoggerPrefix = "config-watcher"
)

// ControllerSetter - receives a new controller list
type ControllerSetter interface {
	SetControllers([]identity.Identity)
}

// configWatcher - reload the controller list when the configuration file changes
type configWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	target   ControllerSetter
	reload   func(string) ([]identity.Identity, error)
	process  *background.T
	reloaded chan struct{}
}

func newConfigWatcher(configurationFile string, target ControllerSetter, reload func(string) ([]identity.Identity, error)) (*configWatcher, error) {
	log := logger.New(watcherLoggerPrefix)

	filePath, err := filepath.Abs(filepath.Clean(configurationFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", configurationFile, err)
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &configWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		target:   target,
		reload:   reload,
		reloaded: make(chan struct{}, 1),
	}, nil
}

// Start - watch the directory so editors that replace the file are seen
func (w *configWatcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	w.process = background.Start(background.Processes{w}, nil)
	return nil
}

// Stop - end the watch
func (w *configWatcher) Stop() {
	w.process.Stop()
	_ = w.watcher.Close()
}

// Run - event loop, returns when shutdown is closed
func (w *configWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	for {
		select {
		case <-shutdown:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				continue
			}
			if !watcherEventFileChange(event) {
				continue
			}
			w.log.Infof("file event: %v", event)

			controllers, err := w.reload(w.filePath)
			if nil != err {
				w.log.Errorf("reload: %q  error: %s", w.filePath, err)
				continue
			}
			w.target.SetControllers(controllers)
			w.log.Infof("controllers reloaded: %d", len(controllers))

			// non blocking notification for anyone waiting
			select {
			case w.reloaded <- struct{}{}:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}

// reloadControllers - read just the controller list from a configuration file
func reloadControllers(configurationFile string) ([]identity.Identity, error) {
	options, err := getConfiguration(configurationFile)
	if nil != err {
		return nil, err
	}
	return parseControllers(options.Controllers)
}

package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch re-loads the settings file whenever it is written and delivers the
// result to onChange. The parent directory is watched rather than the file
// itself, since editors typically replace the file on save. The caller owns
// the returned watcher and closes it to stop delivery.
func Watch(path string, onChange func(Settings)) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					onChange(Load(path))
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return watcher, nil
}

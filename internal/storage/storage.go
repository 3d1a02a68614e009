package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Storage persists lightweight bot state as a single JSON file. Everything
// fits in memory and is flushed on every change; no database needed for a
// bounded command-history ring.

const commandHistoryLimit = 50

// CommandHistoryRecord is one logged command invocation.
type CommandHistoryRecord struct {
	ChannelID   string    `json:"channel_id"`
	ChannelName string    `json:"channel_name"`
	GuildName   string    `json:"guild_name"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	Command     string    `json:"command"`
	Datetime    time.Time `json:"datetime"`
}

type fileData struct {
	CommandHistory map[string][]CommandHistoryRecord `json:"command_history"`
}

// Storage is safe for concurrent use.
type Storage struct {
	mu   sync.RWMutex
	path string
	data fileData
}

// New opens (or creates) the store at path.
func New(path string) (*Storage, error) {
	s := &Storage{
		path: path,
		data: fileData{CommandHistory: make(map[string][]CommandHistoryRecord)},
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("storage: parse %s: %w", path, err)
	}
	if s.data.CommandHistory == nil {
		s.data.CommandHistory = make(map[string][]CommandHistoryRecord)
	}
	return s, nil
}

// AppendCommand records a command invocation for a guild, keeping the ring
// bounded at commandHistoryLimit.
func (s *Storage) AppendCommand(guildID string, rec CommandHistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.data.CommandHistory[guildID], rec)
	if len(history) > commandHistoryLimit {
		history = history[len(history)-commandHistoryLimit:]
	}
	s.data.CommandHistory[guildID] = history

	return s.save()
}

// CommandHistory returns a copy of the guild's recorded invocations, oldest
// first.
func (s *Storage) CommandHistory(guildID string) []CommandHistoryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.data.CommandHistory[guildID]
	out := make([]CommandHistoryRecord, len(history))
	copy(out, history)
	return out
}

// TotalCommands counts recorded invocations across all guilds.
func (s *Storage) TotalCommands() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, h := range s.data.CommandHistory {
		total += len(h)
	}
	return total
}

// Close flushes the store a final time.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes atomically: temp file in the same directory, then rename.
// Callers hold the lock.
func (s *Storage) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: marshal: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".datastore-*.json")
	if err != nil {
		return fmt.Errorf("storage: temp file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: rename: %w", err)
	}
	return nil
}

package repositories

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"presence-lab/contract"
	"presence-lab/domain/presence"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

type ISnapshotRepository interface {
	Load() (Snapshot, error)
}

// Snapshot is a frozen picture of the network used to seed a registry.
// Channel members are joined in the order they are listed.
type Snapshot struct {
	Sessions []SessionRecord `yaml:"sessions" validate:"dive"`
	Channels []ChannelRecord `yaml:"channels" validate:"dive"`
}

type SessionRecord struct {
	Nick  string `yaml:"nick" validate:"required,max=30"`
	Ident string `yaml:"ident" validate:"required"`
	Host  string `yaml:"host" validate:"required"`
	VHost string `yaml:"vhost"`
	Modes string `yaml:"modes"`
}

type ChannelRecord struct {
	Name    string   `yaml:"name" validate:"required,startswith=#|startswith=&"`
	Topic   string   `yaml:"topic"`
	Modes   string   `yaml:"modes"`
	Key     string   `yaml:"key"`
	Limit   int      `yaml:"limit" validate:"gte=0"`
	Members []string `yaml:"members" validate:"dive,required"`
}

type SnapshotRepository struct {
	path string
	log  *slog.Logger
}

func NewSnapshotRepository(path string, log *slog.Logger) SnapshotRepository {
	return SnapshotRepository{path: path, log: log}
}

func (r SnapshotRepository) Load() (Snapshot, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	snapshot, err := DecodeSnapshot(f)
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot %s: %w", r.path, err)
	}
	r.log.Info("Snapshot loaded",
		"path", r.path,
		"sessions", len(snapshot.Sessions),
		"channels", len(snapshot.Channels))
	return snapshot, nil
}

// DecodeSnapshot parses and validates a YAML snapshot. Unknown fields are
// rejected.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	var snapshot Snapshot
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&snapshot); err != nil && err != io.EOF {
		return Snapshot{}, fmt.Errorf("decode: %w", err)
	}
	if err := validate.Struct(snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("validate: %w", err)
	}
	return snapshot, nil
}

// Seed connects every session, opens every channel and joins the members.
func (s Snapshot) Seed(registry contract.IRegistry) error {
	for i, rec := range s.Sessions {
		_, err := registry.Connect(presence.Session{
			Nick:  rec.Nick,
			Ident: rec.Ident,
			Host:  rec.Host,
			VHost: rec.VHost,
			Modes: presence.ParseModes(rec.Modes),
		})
		if err != nil {
			return fmt.Errorf("session #%d: %w", i+1, err)
		}
	}
	for i, rec := range s.Channels {
		err := registry.Open(presence.Channel{
			Name:  rec.Name,
			Topic: rec.Topic,
			Modes: presence.ParseModes(rec.Modes),
			Key:   rec.Key,
			Limit: rec.Limit,
		})
		if err != nil {
			return fmt.Errorf("channel #%d: %w", i+1, err)
		}
		for _, nick := range rec.Members {
			if err = registry.Join(nick, rec.Name); err != nil {
				return fmt.Errorf("channel %s: %w", rec.Name, err)
			}
		}
	}
	return nil
}

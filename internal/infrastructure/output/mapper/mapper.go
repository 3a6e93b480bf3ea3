package mapper

import (
	"crypto/sha256"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/whiteelite/garage/internal/infrastructure/output/models"
	shared "github.com/whiteelite/garage/pkg/shared/domain/entities"
)

var (
	ErrHashMismatch = errors.New("message hash does not match content")
	ErrKindMismatch = errors.New("message kind does not match target type")
)

// Hash returns the base58 encoded SHA-256 of content.
func Hash(content []byte) string {
	sum := sha256.Sum256(content)
	return base58.Encode(sum[:])
}

func ToMessage[T shared.Entity](entity *T) (*models.Message, error) {
	serialized, err := json.Marshal(*entity)
	if err != nil {
		return nil, err
	}

	return &models.Message{
		ID:      uuid.New(),
		Kind:    (*entity).EntityKind(),
		Content: serialized,
		Hash:    Hash(serialized),
	}, nil
}

func FromMessage[T shared.Entity](message *models.Message) (*T, error) {
	if Hash(message.Content) != message.Hash {
		return nil, errors.Wrapf(ErrHashMismatch, "message %s", message.ID)
	}

	entity := new(T)
	if kind := (*entity).EntityKind(); kind != message.Kind {
		return nil, errors.Wrapf(ErrKindMismatch, "message %s is %q, want %q", message.ID, message.Kind, kind)
	}

	if err := json.Unmarshal(message.Content, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

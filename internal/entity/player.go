package entity

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
)

type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Mark string `json:"mark"`
}

// PlayerRegistry - shared session state both players register through; it
// guarantees marks and names stay unique before the core ever compares them.
type PlayerRegistry struct {
	players []*Player
}

func NewPlayerRegistry() *PlayerRegistry {
	return &PlayerRegistry{}
}

// Register - validates name and mark against every registered player and
// returns the new player on success.
func (that *PlayerRegistry) Register(name, mark string) (*Player, error) {
	if utf8.RuneCountInString(mark) != 1 {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	for _, player := range that.players {
		if player.Mark == mark {
			return nil, fmt.Errorf("%w: %q", apperror.ErrDuplicateMark, mark)
		}

		if player.Name == name {
			return nil, fmt.Errorf("%w: %q", apperror.ErrDuplicateName, name)
		}
	}

	player := &Player{
		ID:   uuid.NewString(),
		Name: name,
		Mark: mark,
	}
	that.players = append(that.players, player)

	return player, nil
}

func (that *PlayerRegistry) Players() []*Player {
	return that.players
}

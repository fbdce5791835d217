package entity

import (
	"fmt"

	"github.com/rocketscienceinc/twisted-tictactoe/internal/apperror"
)

type AbilityType string

const (
	AbilityNone   AbilityType = ""
	AbilitySwap   AbilityType = "swap"
	AbilityBlock  AbilityType = "block"
	AbilityRemove AbilityType = "remove"
)

// InitialAbilityCharges is how many uses each ability starts with.
const InitialAbilityCharges = 1

func ParseAbility(name string) (AbilityType, error) {
	switch ability := AbilityType(name); ability {
	case AbilitySwap, AbilityBlock, AbilityRemove:
		return ability, nil
	default:
		return AbilityNone, fmt.Errorf("%w: %q", apperror.ErrUnknownAbility, name)
	}
}

// Title is the capitalised ability name used in messages.
func (that AbilityType) Title() string {
	switch that {
	case AbilitySwap:
		return "Swap"
	case AbilityBlock:
		return "Block"
	case AbilityRemove:
		return "Remove"
	default:
		return ""
	}
}

// AbilityCounters holds remaining uses per ability for one player.
type AbilityCounters map[AbilityType]int

func NewAbilityCounters() AbilityCounters {
	return AbilityCounters{
		AbilitySwap:   InitialAbilityCharges,
		AbilityBlock:  InitialAbilityCharges,
		AbilityRemove: InitialAbilityCharges,
	}
}

// Spend decrements a charge; it never goes below zero.
func (that AbilityCounters) Spend(ability AbilityType) error {
	if that[ability] <= 0 {
		return apperror.ErrNoAbilityChargesLeft
	}

	that[ability]--

	return nil
}

func (that AbilityCounters) Clone() AbilityCounters {
	clone := make(AbilityCounters, len(that))
	for ability, left := range that {
		clone[ability] = left
	}

	return clone
}

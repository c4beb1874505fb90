package commands

import (
	"errors"
	"fmt"

	"mtgBot/internal/domain"
)

type operation int

const (
	opSearch operation = iota
	opRecommendations
	opCombos
	opDetails
	opRulings
)

// failureReply traduce un error de proveedor al mensaje que ve el usuario.
// Un not-found se reporta como tal; el resto de fallos (red, status no 2xx,
// respuesta mal formada) usa el mensaje genérico de cada comando.
func failureReply(op operation, name string, err error) string {
	notFound := errors.Is(err, domain.ErrNotFound)

	switch op {
	case opSearch:
		if notFound {
			return fmt.Sprintf("Could not find commander '%s' on EDHRec. Please double-check the spelling.", name)
		}
		return fmt.Sprintf("An error occurred while fetching data from EDHRec: %v", err)
	case opRecommendations:
		if notFound {
			return fmt.Sprintf("Could not find commander '%s' on EDHRec. Please double-check the spelling.", name)
		}
		return fmt.Sprintf("An error occurred while fetching recommendations from EDHRec: %v", err)
	case opCombos:
		if notFound {
			return fmt.Sprintf("Could not find combos for '%s'. Please double-check the spelling.", name)
		}
		return fmt.Sprintf("An error occurred while fetching combos from EDHRec: %v", err)
	case opDetails:
		if notFound {
			return fmt.Sprintf("Could not find card '%s' on EDHRec. Please double-check the spelling.", name)
		}
		return fmt.Sprintf("An error occurred while fetching card details from EDHRec: %v", err)
	case opRulings:
		if notFound {
			return fmt.Sprintf("Could not find card '%s' or an error occurred.", name)
		}
		return fmt.Sprintf("An error occurred while fetching rulings for '%s' from Scryfall.", name)
	default:
		return fmt.Sprintf("An error occurred: %v", err)
	}
}

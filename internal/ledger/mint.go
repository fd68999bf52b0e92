// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// MintSpec is one startup credit.
type MintSpec struct {
	To     models.Account
	Amount uint64
}

// ParseMintSpecs parses "principal=amount" pairs. Amounts are subunits.
func ParseMintSpecs(raw []string) ([]MintSpec, error) {
	specs := make([]MintSpec, 0, len(raw))
	for _, item := range raw {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		owner, amount, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMintSpec, item)
		}

		n, err := strconv.ParseUint(strings.TrimSpace(amount), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidMintSpec, item, err)
		}

		specs = append(specs, MintSpec{To: models.Account{Owner: strings.TrimSpace(owner)}, Amount: n})
	}

	return specs, nil
}

// Seed mints every spec in order.
func (l *Ledger) Seed(specs []MintSpec) error {
	for _, spec := range specs {
		if _, err := l.Mint(spec.To, spec.Amount); err != nil {
			return fmt.Errorf("mint to %s: %w", spec.To.Owner, err)
		}
	}
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// bounds of the cleanup cycle time
const (
	minimumExpiryPeriod = time.Second
	maximumExpiryPeriod = 10 * time.Minute
)

type expiryData struct {
	log    *logger.L
	period time.Duration
}

func expiryPeriod(expiry time.Duration) time.Duration {
	period := expiry / 4
	if period < minimumExpiryPeriod {
		return minimumExpiryPeriod
	}
	if period > maximumExpiryPeriod {
		return maximumExpiryPeriod
	}
	return period
}

// expiry loop
func (state *expiryData) Run(args interface{}, shutdown <-chan struct{}) {

	log := state.log
	p := args.(*Pool)

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-time.After(state.period):
			p.Lock()
			before := p.pending.ItemCount()
			p.pending.DeleteExpired()
			p.errors.DeleteExpired()
			after := p.pending.ItemCount()
			p.Unlock()

			if before != after {
				log.Infof("expired: %d  remaining: %d", before-after, after)
			}
		}
	}

	log.Info("stopped")
}

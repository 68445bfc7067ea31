// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/audittracker/messagebus"
)

const eventQueueSize = 100

type eventLogger struct {
	log   *logger.L
	queue <-chan messagebus.Message
}

func newEventLogger(bus *messagebus.Bus) *eventLogger {
	return &eventLogger{
		log:   logger.New("events"),
		queue: bus.Chan(eventQueueSize),
	}
}

// Run - log every ledger event until shutdown
func (e *eventLogger) Run(args interface{}, shutdown <-chan struct{}) {
	log := e.log
	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case m, ok := <-e.queue:
			if !ok {
				break loop
			}
			b, err := json.Marshal(m.Payload)
			if nil != err {
				log.Errorf("event: %s  id: %s  marshal error: %s", m.Name, m.Id, err)
				continue loop
			}
			log.Infof("event: %s  id: %s  at: %s  payload: %s", m.Name, m.Id, m.Timestamp.Format("2006-01-02T15:04:05.000Z07:00"), b)
		}
	}
	log.Info("stopped")
}

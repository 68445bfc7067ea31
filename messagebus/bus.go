// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/google/uuid"
)

// internal constants
const (
	defaultQueueSize = 1000
)

// Message - one event
type Message struct {
	Id        uuid.UUID
	Name      string
	Payload   interface{}
	Timestamp time.Time
}

type listener struct {
	queue   chan Message
	dropped uint64
}

// Bus - broadcaster of events
type Bus struct {
	sync.RWMutex
	log       *logger.L
	listeners []*listener
	closed    bool
}

// New - create an empty bus
func New() *Bus {
	return &Bus{
		log: logger.New("messagebus"),
	}
}

// Chan - new listener queue
//
// size <= 0 gives the default queue size
func (b *Bus) Chan(size int) <-chan Message {
	if size <= 0 {
		size = defaultQueueSize
	}

	l := &listener{
		queue: make(chan Message, size),
	}

	b.Lock()
	defer b.Unlock()
	if b.closed {
		close(l.queue)
	} else {
		b.listeners = append(b.listeners, l)
	}
	return l.queue
}

// Emit - send an event to every listener
func (b *Bus) Emit(name string, payload interface{}) {
	m := Message{
		Id:        uuid.New(),
		Name:      name,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}

	b.RLock()
	defer b.RUnlock()

	if b.closed {
		return
	}

	b.log.Debugf("emit: %s  id: %s  listeners: %d", name, m.Id, len(b.listeners))

	for i, l := range b.listeners {
		select {
		case l.queue <- m:
		default:
			dropped := atomic.AddUint64(&l.dropped, 1)
			b.log.Warnf("listener: %d  queue full, dropped: %s  id: %s  total dropped: %d", i, name, m.Id, dropped)
		}
	}
}

// Close - close every listener queue, later emits are ignored
func (b *Bus) Close() {
	b.Lock()
	defer b.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for _, l := range b.listeners {
		close(l.queue)
	}
	b.listeners = nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"sort"
	"sync"

	"github.com/bitmark-inc/audittracker/fault"
	"github.com/bitmark-inc/audittracker/schema"
	"github.com/bitmark-inc/audittracker/transactionrecord"
)

// Registry - handlers by kind
type Registry struct {
	sync.RWMutex
	handlers  map[transactionrecord.Kind]Handler
	validator *schema.Validator
}

// NewRegistry - empty registry
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[transactionrecord.Kind]Handler),
	}
}

// NewInvoiceRegistry - registry holding the four invoice handlers
// sharing one validator owned by the registry
func NewInvoiceRegistry(activated bool) (*Registry, error) {
	validator, err := schema.New()
	if nil != err {
		return nil, err
	}

	r := NewRegistry()
	r.validator = validator
	handlers := []Handler{
		NewInvoiceAdded(activated, validator),
		NewInvoicePaid(activated, validator),
		NewInvoiceCanceled(activated, validator),
		NewInvoiceSplit(activated, validator),
	}
	for _, h := range handlers {
		err := r.Register(h)
		if nil != err {
			return nil, err
		}
	}
	return r, nil
}

// Validator - the validator of the registry's own handlers, nil for
// an empty registry
func (r *Registry) Validator() *schema.Validator {
	return r.validator
}

// Register - add a handler, only one per kind
func (r *Registry) Register(h Handler) error {
	r.Lock()
	defer r.Unlock()

	kind := h.Kind()
	if !kind.Valid() {
		return fault.ErrUnknownTransactionKind
	}
	if _, ok := r.handlers[kind]; ok {
		return fault.ErrDuplicateRegistration
	}
	r.handlers[kind] = h
	return nil
}

// Get - handler of a kind
func (r *Registry) Get(kind transactionrecord.Kind) (Handler, bool) {
	r.RLock()
	defer r.RUnlock()
	h, ok := r.handlers[kind]
	return h, ok
}

// Activated - handler of a kind if it is registered and activated
func (r *Registry) Activated(kind transactionrecord.Kind) (Handler, error) {
	h, ok := r.Get(kind)
	if !ok {
		return nil, fault.ErrUnknownTransactionKind
	}
	if !h.IsActivated() {
		return nil, fault.ErrHandlerNotActivated
	}
	return h, nil
}

// Kinds - registered kinds in ascending order
func (r *Registry) Kinds() []transactionrecord.Kind {
	r.RLock()
	defer r.RUnlock()

	kinds := make([]transactionrecord.Kind, 0, len(r.handlers))
	for kind := range r.handlers {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i] < kinds[j]
	})
	return kinds
}

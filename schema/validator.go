// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"encoding/hex"
	"sync"
	"time"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/bitmark-inc/audittracker/fault"
	"github.com/bitmark-inc/audittracker/transactionrecord"
)

// single byte length prefix on the wire
const wireCeiling = 255

// FormatFunc - predicate for a named string format
type FormatFunc func(string) bool

// Validator - resolved constraint trees for every kind
type Validator struct {
	sync.RWMutex
	trees    map[transactionrecord.Kind]*jsonschema.Schema
	resolved map[transactionrecord.Kind]*jsonschema.Resolved
	formats  map[string]FormatFunc
}

// New - resolve the trees of all kinds and register the standard formats
func New() (*Validator, error) {
	v := &Validator{
		trees:    make(map[transactionrecord.Kind]*jsonschema.Schema),
		resolved: make(map[transactionrecord.Kind]*jsonschema.Resolved),
		formats: map[string]FormatFunc{
			"date-time": isDateTime,
		},
	}

	for _, kind := range transactionrecord.AllKinds {
		tree, ok := Tree(kind)
		if !ok {
			return nil, fault.ErrUnknownTransactionKind
		}
		resolved, err := tree.Resolve(nil)
		if nil != err {
			return nil, err
		}
		v.trees[kind] = tree
		v.resolved[kind] = resolved
	}
	return v, nil
}

// Validate - check a transaction against the standard rules only
//
// a fresh validator is used so formats registered on other validators
// never apply here
func Validate(tx *transactionrecord.Transaction) error {
	v, err := New()
	if nil != err {
		return err
	}
	return v.Validate(tx)
}

// RegisterFormat - add or replace a named format predicate
func (v *Validator) RegisterFormat(name string, f FormatFunc) {
	v.Lock()
	defer v.Unlock()
	v.formats[name] = f
}

// Validate - structural check of a complete transaction
//
// any failure is an InvalidError or a LengthError and must not be
// retried
func (v *Validator) Validate(tx *transactionrecord.Transaction) error {
	if nil == tx {
		return fault.ErrMissingAsset
	}
	if !tx.Kind.Valid() {
		return fault.ErrUnknownTransactionKind
	}

	instance := transactionInstance(tx)

	err := checkWireCeiling(instance)
	if nil != err {
		return err
	}

	v.RLock()
	defer v.RUnlock()

	err = v.resolved[tx.Kind].Validate(instance)
	if nil != err {
		return fault.InvalidError(fault.ErrSchemaValidation.Error() + ": " + err.Error())
	}

	return v.checkFormats(v.trees[tx.Kind], instance)
}

// walk the tree alongside the instance applying format predicates
func (v *Validator) checkFormats(tree *jsonschema.Schema, instance interface{}) error {
	if nil == tree {
		return nil
	}
	switch value := instance.(type) {
	case string:
		if "" == tree.Format {
			return nil
		}
		f, ok := v.formats[tree.Format]
		if ok && !f(value) {
			return fault.InvalidError(fault.ErrSchemaValidation.Error() + ": " + value + " is not a valid " + tree.Format)
		}
	case map[string]interface{}:
		for name, item := range value {
			if err := v.checkFormats(tree.Properties[name], item); nil != err {
				return err
			}
		}
	case []interface{}:
		for _, item := range value {
			if err := v.checkFormats(tree.Items, item); nil != err {
				return err
			}
		}
	}
	return nil
}

func checkWireCeiling(instance interface{}) error {
	switch value := instance.(type) {
	case string:
		if len(value) > wireCeiling {
			return fault.ErrFieldTooLong
		}
	case map[string]interface{}:
		for _, item := range value {
			if err := checkWireCeiling(item); nil != err {
				return err
			}
		}
	case []interface{}:
		if len(value) > wireCeiling {
			return fault.ErrCountTooLarge
		}
		for _, item := range value {
			if err := checkWireCeiling(item); nil != err {
				return err
			}
		}
	}
	return nil
}

func isDateTime(s string) bool {
	_, err := time.Parse(time.RFC3339Nano, s)
	return nil == err
}

// JSON shaped view of a transaction, numbers as float64
func transactionInstance(tx *transactionrecord.Transaction) map[string]interface{} {
	m := map[string]interface{}{
		"version":   float64(tx.Version),
		"network":   float64(tx.Network),
		"typeGroup": float64(tx.TypeGroup),
		"type":      float64(tx.Kind),
		"nonce":     float64(tx.Nonce),
		"fee":       float64(tx.Fee),
		"amount":    float64(tx.Amount),
	}
	if nil != tx.Sender {
		m["senderPublicKey"] = hex.EncodeToString(tx.Sender.PublicKey)
	}
	if 0 != len(tx.Signature) {
		m["signature"] = hex.EncodeToString(tx.Signature)
	}
	if asset := assetInstance(tx.Asset); nil != asset {
		m["asset"] = asset
	}
	return m
}

func assetInstance(asset transactionrecord.Asset) map[string]interface{} {
	switch a := asset.(type) {
	case *transactionrecord.InvoiceAdded:
		if nil == a {
			return nil
		}
		return map[string]interface{}{
			"amount":   float64(a.Amount),
			"currency": a.Currency,
			"date":     a.Date,
			"invoice":  a.Invoice,
			"customer": a.Customer,
		}
	case *transactionrecord.InvoicePaid:
		if nil == a {
			return nil
		}
		return batchInstance(a.Hash, a.Ids)
	case *transactionrecord.InvoiceCanceled:
		if nil == a {
			return nil
		}
		return batchInstance(a.Hash, a.Ids)
	case *transactionrecord.InvoiceSplit:
		if nil == a {
			return nil
		}
		m := map[string]interface{}{
			"amount":         float64(a.Amount),
			"date":           a.Date,
			"invoice":        a.Invoice,
			"parent_invoice": a.ParentInvoice,
		}
		if "" != a.Currency {
			m["currency"] = a.Currency
		}
		return m
	default:
		return nil
	}
}

func batchInstance(hash string, ids []string) map[string]interface{} {
	items := make([]interface{}, len(ids))
	for i, id := range ids {
		items[i] = id
	}
	return map[string]interface{}{
		"hash": hash,
		"ids":  items,
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wallet - account state with a namespaced attribute bag
package wallet

import (
	"encoding/json"
	"strings"

	"github.com/bitmark-inc/audittracker/account"
	"github.com/bitmark-inc/audittracker/fault"
)

// separator of attribute path elements
const pathSeparator = "."

// Wallet - state of one account
type Wallet struct {
	Account    *account.Account       `json:"account"`
	Nonce      uint64                 `json:"nonce,string"`
	Balance    uint64                 `json:"balance,string"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// New - empty wallet for an account
func New(acc *account.Account) *Wallet {
	return &Wallet{
		Account:    acc,
		Attributes: make(map[string]interface{}),
	}
}

// PublicKey - the storage key of the wallet
func (w *Wallet) PublicKey() []byte {
	if nil == w.Account {
		return nil
	}
	return w.Account.PublicKey
}

// HasAttribute - true if the path holds a value
func (w *Wallet) HasAttribute(path string) bool {
	_, ok := w.lookup(path)
	return ok
}

// GetAttribute - decode the value at path into v
func (w *Wallet) GetAttribute(path string, v interface{}) error {
	value, ok := w.lookup(path)
	if !ok {
		return fault.ErrAttributeNotFound
	}
	b, err := json.Marshal(value)
	if nil != err {
		return err
	}
	return json.Unmarshal(b, v)
}

// SetAttribute - store a JSON normalised copy of value at path
//
// intermediate elements are created as needed
func (w *Wallet) SetAttribute(path string, value interface{}) error {
	elements, err := split(path)
	if nil != err {
		return err
	}

	b, err := json.Marshal(value)
	if nil != err {
		return err
	}
	var normalised interface{}
	err = json.Unmarshal(b, &normalised)
	if nil != err {
		return err
	}

	if nil == w.Attributes {
		w.Attributes = make(map[string]interface{})
	}
	node := w.Attributes
	last := len(elements) - 1
	for _, e := range elements[:last] {
		next, ok := node[e].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			node[e] = next
		}
		node = next
	}
	node[elements[last]] = normalised
	return nil
}

// ForgetAttribute - remove path and any empty parents
func (w *Wallet) ForgetAttribute(path string) {
	elements, err := split(path)
	if nil != err {
		return
	}
	forget(w.Attributes, elements)
}

// Clone - deep copy via the JSON form
func (w *Wallet) Clone() (*Wallet, error) {
	b, err := w.Pack()
	if nil != err {
		return nil, err
	}
	return Unpack(b)
}

// Pack - deterministic JSON encoding
func (w *Wallet) Pack() ([]byte, error) {
	return json.Marshal(w)
}

// Unpack - reverse of Pack
func Unpack(data []byte) (*Wallet, error) {
	w := &Wallet{}
	err := json.Unmarshal(data, w)
	if nil != err {
		return nil, err
	}
	if nil == w.Account {
		return nil, fault.ErrWalletMissingPublicKey
	}
	if nil == w.Attributes {
		w.Attributes = make(map[string]interface{})
	}
	return w, nil
}

func (w *Wallet) lookup(path string) (interface{}, bool) {
	elements, err := split(path)
	if nil != err {
		return nil, false
	}
	var node interface{} = w.Attributes
	for _, e := range elements {
		m, ok := node.(map[string]interface{})
		if !ok {
			return nil, false
		}
		node, ok = m[e]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// returns true if the map is left empty
func forget(node map[string]interface{}, elements []string) bool {
	if nil == node {
		return true
	}
	if 1 == len(elements) {
		delete(node, elements[0])
		return 0 == len(node)
	}
	child, ok := node[elements[0]].(map[string]interface{})
	if !ok {
		return 0 == len(node)
	}
	if forget(child, elements[1:]) {
		delete(node, elements[0])
	}
	return 0 == len(node)
}

func split(path string) ([]string, error) {
	if "" == path {
		return nil, fault.ErrInvalidAttributePath
	}
	elements := strings.Split(path, pathSeparator)
	for _, e := range elements {
		if "" == e {
			return nil, fault.ErrInvalidAttributePath
		}
	}
	return elements, nil
}

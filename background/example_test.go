// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"

	"github.com/bitmark-inc/audittracker/background"
)

type sweeper struct {
	name string
}

func (s *sweeper) Run(args interface{}, shutdown <-chan struct{}) {
	fmt.Printf("%s: started\n", s.name)
	<-shutdown
	fmt.Printf("%s: stopped\n", s.name)
}

func Example() {
	p := background.Start(background.Processes{
		&sweeper{name: "expiry"},
	}, nil)

	p.Stop()

	// Output:
	// expiry: started
	// expiry: stopped
}

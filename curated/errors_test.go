// This file is part of TinyCanvas.
//
// TinyCanvas is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// TinyCanvas is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with TinyCanvas.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"testing"

	"github.com/jetsetilly/tinycanvas/curated"
	"github.com/jetsetilly/tinycanvas/test"
)

const (
	testError  = "test error: %s"
	wrapError  = "wrap error: %v"
	plainError = "plain error"
)

func TestIs(t *testing.T) {
	err := curated.Errorf(testError, "detail")
	test.ExpectedSuccess(t, curated.IsAny(err))
	test.ExpectedSuccess(t, curated.Is(err, testError))
	test.ExpectedFailure(t, curated.Is(err, plainError))

	// nil errors are not curated errors
	test.ExpectedFailure(t, curated.IsAny(nil))
	test.ExpectedFailure(t, curated.Is(nil, testError))
}

func TestHas(t *testing.T) {
	err := curated.Errorf(testError, "detail")
	wrapped := curated.Errorf(wrapError, err)

	test.ExpectedSuccess(t, curated.Has(wrapped, wrapError))
	test.ExpectedSuccess(t, curated.Has(wrapped, testError))
	test.ExpectedFailure(t, curated.Has(wrapped, plainError))

	// Is() does not look down the chain
	test.ExpectedFailure(t, curated.Is(wrapped, testError))
}

func TestDeduplication(t *testing.T) {
	// duplicate adjacent message parts are removed during normalisation
	err := curated.Errorf("protocol: %v", curated.Errorf("protocol: %s", "bad address"))
	test.Equate(t, err.Error(), "protocol: bad address")
}

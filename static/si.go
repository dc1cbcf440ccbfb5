// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package static

// SI prefixes. Zetta, Yotta and their inverses do not fit in an int64.
type (
	Atto  struct{} // 10^-18
	Femto struct{} // 10^-15
	Pico  struct{} // 10^-12
	Nano  struct{} // 10^-9
	Micro struct{} // 10^-6
	Milli struct{} // 10^-3
	Centi struct{} // 10^-2
	Deci  struct{} // 10^-1
	One   struct{} // 1
	Deca  struct{} // 10^1
	Hecto struct{} // 10^2
	Kilo  struct{} // 10^3
	Mega  struct{} // 10^6
	Giga  struct{} // 10^9
	Tera  struct{} // 10^12
	Peta  struct{} // 10^15
	Exa   struct{} // 10^18
)

func (Atto) Num() int64 { return 1 }
func (Atto) Den() int64 { return 1e18 }
func (Femto) Num() int64 { return 1 }
func (Femto) Den() int64 { return 1e15 }
func (Pico) Num() int64 { return 1 }
func (Pico) Den() int64 { return 1e12 }
func (Nano) Num() int64 { return 1 }
func (Nano) Den() int64 { return 1e9 }
func (Micro) Num() int64 { return 1 }
func (Micro) Den() int64 { return 1e6 }
func (Milli) Num() int64 { return 1 }
func (Milli) Den() int64 { return 1e3 }
func (Centi) Num() int64 { return 1 }
func (Centi) Den() int64 { return 100 }
func (Deci) Num() int64 { return 1 }
func (Deci) Den() int64 { return 10 }
func (One) Num() int64 { return 1 }
func (One) Den() int64 { return 1 }
func (Deca) Num() int64 { return 10 }
func (Deca) Den() int64 { return 1 }
func (Hecto) Num() int64 { return 100 }
func (Hecto) Den() int64 { return 1 }
func (Kilo) Num() int64 { return 1e3 }
func (Kilo) Den() int64 { return 1 }
func (Mega) Num() int64 { return 1e6 }
func (Mega) Den() int64 { return 1 }
func (Giga) Num() int64 { return 1e9 }
func (Giga) Den() int64 { return 1 }
func (Tera) Num() int64 { return 1e12 }
func (Tera) Den() int64 { return 1 }
func (Peta) Num() int64 { return 1e15 }
func (Peta) Den() int64 { return 1 }
func (Exa) Num() int64 { return 1e18 }
func (Exa) Den() int64 { return 1 }

// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

// DependentCost is the cost of an operation whose price grows with the
// number of units (bytes, slots) it processes
type DependentCost struct {
	Base       uint64 `json:"base"`
	DepPerUnit uint64 `json:"depPerUnit"`
}

// Resolve returns the gas charged for processing units
func (d DependentCost) Resolve(units uint64) uint64 {
	if d.DepPerUnit == 0 {
		return d.Base
	}
	return d.Base + units/d.DepPerUnit
}

// GasCosts is the per-opcode gas price table. JSON and YAML keys match the
// field names case-insensitively
type GasCosts struct {
	Add          uint64
	Addi         uint64
	Aloc         uint64
	And          uint64
	Andi         uint64
	Bal          uint64
	Bhei         uint64
	Bhsh         uint64
	Burn         uint64
	Cb           uint64
	Cfei         uint64
	Cfsi         uint64
	Croo         uint64
	Div          uint64
	Divi         uint64
	Eck1         uint64
	Ecr1         uint64
	Ed19         uint64
	Eq           uint64
	Exp          uint64
	Expi         uint64
	Flag         uint64
	Gm           uint64
	Gt           uint64
	Gtf          uint64
	Ji           uint64
	Jmp          uint64
	Jne          uint64
	Jnei         uint64
	Jnzi         uint64
	Jmpf         uint64
	Jmpb         uint64
	Jnzf         uint64
	Jnzb         uint64
	Jnef         uint64
	Jneb         uint64
	Lb           uint64
	Log          uint64
	Lt           uint64
	Lw           uint64
	Mint         uint64
	Mlog         uint64
	Modi         uint64
	Mod          uint64
	Movi         uint64
	Mroo         uint64
	Mul          uint64
	Muli         uint64
	Mldv         uint64
	Noop         uint64
	Not          uint64
	Or           uint64
	Ori          uint64
	Poph         uint64
	Popl         uint64
	Pshh         uint64
	Pshl         uint64
	Move         uint64
	Ret          uint64
	Sb           uint64
	Sll          uint64
	Slli         uint64
	Srl          uint64
	Srli         uint64
	Srw          uint64
	Sub          uint64
	Subi         uint64
	Sw           uint64
	Sww          uint64
	Time         uint64
	Tr           uint64
	Tro          uint64
	Wdcm         uint64
	Wqcm         uint64
	Wdop         uint64
	Wqop         uint64
	Wdml         uint64
	Wqml         uint64
	Wddv         uint64
	Wqdv         uint64
	Wdmd         uint64
	Wqmd         uint64
	Wdam         uint64
	Wqam         uint64
	Wdmm         uint64
	Wqmm         uint64
	Xor          uint64
	Xori         uint64
	Rvrt         uint64

	K256         DependentCost
	S256         DependentCost
	Call         DependentCost
	Ccp          DependentCost
	Csiz         DependentCost
	Ldc          DependentCost
	Logd         DependentCost
	Mcl          DependentCost
	Mcli         DependentCost
	Mcp          DependentCost
	Mcpi         DependentCost
	Meq          DependentCost
	Smo          DependentCost
	Retd         DependentCost
	Srwq         DependentCost
	Scwq         DependentCost
	Swwq         DependentCost
	ContractRoot DependentCost
}

// DefaultGasCosts returns the benchmarked gas price table of the standard
// consensus parameter profile
func DefaultGasCosts() GasCosts {
	return GasCosts{
		Add:          1,
		Addi:         1,
		Aloc:         1,
		And:          1,
		Andi:         1,
		Bal:          13,
		Bhei:         1,
		Bhsh:         1,
		Burn:         132,
		Cb:           1,
		Cfei:         1,
		Cfsi:         1,
		Croo:         16,
		Div:          1,
		Divi:         1,
		Eck1:         951,
		Ecr1:         3000,
		Ed19:         3000,
		Eq:           1,
		Exp:          1,
		Expi:         1,
		Flag:         1,
		Gm:           1,
		Gt:           1,
		Gtf:          1,
		Ji:           1,
		Jmp:          1,
		Jne:          1,
		Jnei:         1,
		Jnzi:         1,
		Jmpf:         1,
		Jmpb:         1,
		Jnzf:         1,
		Jnzb:         1,
		Jnef:         1,
		Jneb:         1,
		Lb:           1,
		Log:          9,
		Lt:           1,
		Lw:           1,
		Mint:         135,
		Mlog:         1,
		Modi:         1,
		Mod:          1,
		Movi:         1,
		Mroo:         2,
		Mul:          1,
		Muli:         1,
		Mldv:         1,
		Noop:         1,
		Not:          1,
		Or:           1,
		Ori:          1,
		Poph:         2,
		Popl:         2,
		Pshh:         2,
		Pshl:         2,
		Move:         1,
		Ret:          13,
		Sb:           1,
		Sll:          1,
		Slli:         1,
		Srl:          1,
		Srli:         1,
		Srw:          12,
		Sub:          1,
		Subi:         1,
		Sw:           1,
		Sww:          67,
		Time:         1,
		Tr:           105,
		Tro:          60,
		Wdcm:         1,
		Wqcm:         1,
		Wdop:         1,
		Wqop:         1,
		Wdml:         1,
		Wqml:         1,
		Wddv:         1,
		Wqdv:         2,
		Wdmd:         3,
		Wqmd:         4,
		Wdam:         2,
		Wqam:         3,
		Wdmm:         3,
		Wqmm:         3,
		Xor:          1,
		Xori:         1,
		Rvrt:         13,
		K256:         DependentCost{Base: 11, DepPerUnit: 214},
		S256:         DependentCost{Base: 2, DepPerUnit: 214},
		Call:         DependentCost{Base: 144, DepPerUnit: 214},
		Ccp:          DependentCost{Base: 15, DepPerUnit: 103},
		Csiz:         DependentCost{Base: 17, DepPerUnit: 790},
		Ldc:          DependentCost{Base: 15, DepPerUnit: 272},
		Logd:         DependentCost{Base: 26, DepPerUnit: 64},
		Mcl:          DependentCost{Base: 1, DepPerUnit: 3333},
		Mcli:         DependentCost{Base: 1, DepPerUnit: 3333},
		Mcp:          DependentCost{Base: 1, DepPerUnit: 2000},
		Mcpi:         DependentCost{Base: 3, DepPerUnit: 2000},
		Meq:          DependentCost{Base: 1, DepPerUnit: 2500},
		Smo:          DependentCost{Base: 209, DepPerUnit: 55},
		Retd:         DependentCost{Base: 29, DepPerUnit: 62},
		Srwq:         DependentCost{Base: 47, DepPerUnit: 5},
		Scwq:         DependentCost{Base: 13, DepPerUnit: 5},
		Swwq:         DependentCost{Base: 44, DepPerUnit: 5},
		ContractRoot: DependentCost{Base: 75, DepPerUnit: 1},
	}
}

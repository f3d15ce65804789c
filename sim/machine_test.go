package sim

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/gbasm/asm"
)

var (
	regA  = asm.Reg(asm.REG_A)
	regB  = asm.Reg(asm.REG_B)
	regC  = asm.Reg(asm.REG_C)
	regH  = asm.Reg(asm.REG_H)
	regL  = asm.Reg(asm.REG_L)
	regHL = asm.Reg(asm.REG_HL)
	regDE = asm.Reg(asm.REG_DE)
)

var _ = Describe("Machine", func() {
	var m *Machine

	BeforeEach(func() {
		m = NewMachine()
		m.Symbols["wValue"] = 0xc000
		m.Symbols["SPEED"] = 3
	})

	Context("Loads", func() {
		It("should load immediates and registers", func() {
			Expect(m.Execute([]asm.Instr{
				asm.Ld(regA, asm.Imm(10)),
				asm.Ld(regB, regA),
				asm.Ld(regHL, asm.Imm16(0x9800)),
			})).To(Succeed())
			Expect(m.Reg8(asm.REG_A)).To(Equal(uint8(10)))
			Expect(m.Reg8(asm.REG_B)).To(Equal(uint8(10)))
			Expect(m.Reg16(asm.REG_HL)).To(Equal(uint16(0x9800)))
			Expect(m.Reg8(asm.REG_H)).To(Equal(uint8(0x98)))
		})

		It("should load and store memory", func() {
			m.Poke(0xc000, 42)
			Expect(m.Execute([]asm.Instr{
				asm.Ld(regA, asm.AddrSym("wValue")),
				asm.Inc(regA),
				asm.Ld(asm.Addr(0xc001), regA),
				asm.Ld(regA, asm.Sym("SPEED")),
			})).To(Succeed())
			Expect(m.Peek(0xc001)).To(Equal(uint8(43)))
			Expect(m.Reg8(asm.REG_A)).To(Equal(uint8(3)))
		})

		It("should post-increment through [hli]", func() {
			Expect(m.Execute([]asm.Instr{
				asm.Ld(regHL, asm.Imm16(0xc010)),
				asm.Ld(regA, asm.Imm(7)),
				asm.Ld(asm.AddrRegInc(asm.REG_HL), regA),
				asm.Ld(asm.AddrRegInc(asm.REG_HL), regA),
			})).To(Succeed())
			Expect(m.Peek(0xc010)).To(Equal(uint8(7)))
			Expect(m.Peek(0xc011)).To(Equal(uint8(7)))
			Expect(m.Reg16(asm.REG_HL)).To(Equal(uint16(0xc012)))
		})

		It("should map ldh into the high page", func() {
			m.Poke(0xff44, 0x90)
			Expect(m.Execute([]asm.Instr{
				asm.Ldh(regA, asm.Addr(0x44)),
			})).To(Succeed())
			Expect(m.Reg8(asm.REG_A)).To(Equal(uint8(0x90)))
		})

		It("should report missing symbols", func() {
			err := m.Execute([]asm.Instr{asm.Ld(regA, asm.AddrSym("wMissing"))})
			Expect(err).To(MatchError(ErrSymbolMissing("wMissing")))

			var rt *ErrRuntime
			Expect(errors.As(err, &rt)).To(BeTrue())
			Expect(rt.Index).To(Equal(0))
		})
	})

	Context("Flags", func() {
		DescribeTable("cp",
			func(a, b uint8, zero, carry bool) {
				Expect(m.Execute([]asm.Instr{
					asm.Ld(regA, asm.Imm(a)),
					asm.Cp(asm.Imm(b)),
				})).To(Succeed())
				Expect(m.Zero).To(Equal(zero))
				Expect(m.Carry).To(Equal(carry))
				Expect(m.Reg8(asm.REG_A)).To(Equal(a))
			},
			Entry("equal", uint8(5), uint8(5), true, false),
			Entry("less", uint8(5), uint8(10), false, true),
			Entry("greater", uint8(10), uint8(5), false, false),
			Entry("zero vs max", uint8(0), uint8(255), false, true),
		)

		It("should carry out of add and borrow out of sub", func() {
			Expect(m.Execute([]asm.Instr{
				asm.Ld(regA, asm.Imm(250)),
				asm.Add(regA, asm.Imm(6)),
			})).To(Succeed())
			Expect(m.Reg8(asm.REG_A)).To(Equal(uint8(0)))
			Expect(m.Zero).To(BeTrue())
			Expect(m.Carry).To(BeTrue())

			Expect(m.Execute([]asm.Instr{
				asm.Ld(regA, asm.Imm(1)),
				asm.Sub(regA, asm.Imm(2)),
			})).To(Succeed())
			Expect(m.Reg8(asm.REG_A)).To(Equal(uint8(255)))
			Expect(m.Zero).To(BeFalse())
			Expect(m.Carry).To(BeTrue())
		})

		It("should add with carry", func() {
			Expect(m.Execute([]asm.Instr{
				asm.Ld(regA, asm.Imm(255)),
				asm.Add(regA, asm.Imm(1)),
				asm.Ld(regA, asm.Imm(1)),
				asm.AdcA(asm.Imm(1)),
			})).To(Succeed())
			Expect(m.Reg8(asm.REG_A)).To(Equal(uint8(3)))
			Expect(m.Carry).To(BeFalse())
		})

		It("should clear carry on logic", func() {
			m.Carry = true
			Expect(m.Execute([]asm.Instr{
				asm.Ld(regA, asm.Imm(0x0f)),
				asm.And(asm.Imm(0xf0)),
			})).To(Succeed())
			Expect(m.Zero).To(BeTrue())
			Expect(m.Carry).To(BeFalse())

			Expect(m.Execute([]asm.Instr{
				asm.Or(regA, asm.Imm(0x81)),
				asm.Xor(regA, asm.Imm(0x01)),
			})).To(Succeed())
			Expect(m.Reg8(asm.REG_A)).To(Equal(uint8(0x80)))
		})

		It("should shift and swap", func() {
			Expect(m.Execute([]asm.Instr{
				asm.Ld(regA, asm.Imm(0x03)),
				asm.Srl(regA),
			})).To(Succeed())
			Expect(m.Reg8(asm.REG_A)).To(Equal(uint8(0x01)))
			Expect(m.Carry).To(BeTrue())

			Expect(m.Execute([]asm.Instr{
				asm.Ld(regA, asm.Imm(0x12)),
				asm.Swap(regA),
			})).To(Succeed())
			Expect(m.Reg8(asm.REG_A)).To(Equal(uint8(0x21)))
			Expect(m.Carry).To(BeFalse())
		})

		It("should leave flags alone on 16-bit inc and dec", func() {
			m.Zero = true
			Expect(m.Execute([]asm.Instr{
				asm.Ld(regDE, asm.Imm16(0x00ff)),
				asm.Inc(regDE),
				asm.Dec(asm.Reg(asm.REG_BC)),
			})).To(Succeed())
			Expect(m.Reg16(asm.REG_DE)).To(Equal(uint16(0x0100)))
			Expect(m.Reg16(asm.REG_BC)).To(Equal(uint16(0xffff)))
			Expect(m.Zero).To(BeTrue())
		})

		It("should add register pairs", func() {
			Expect(m.Execute([]asm.Instr{
				asm.Ld(regHL, asm.Imm16(0xfff0)),
				asm.Ld(regDE, asm.Imm16(0x0020)),
				asm.Add(regHL, regDE),
			})).To(Succeed())
			Expect(m.Reg16(asm.REG_HL)).To(Equal(uint16(0x0010)))
			Expect(m.Carry).To(BeTrue())
		})
	})

	Context("Branches", func() {
		It("should take conditional jumps on the flags", func() {
			Expect(m.Execute([]asm.Instr{
				asm.Ld(regA, asm.Imm(1)),
				asm.Cp(asm.Imm(1)),
				asm.JpCond(asm.COND_NZ, ".skip"),
				asm.Ld(regB, asm.Imm(1)),
				asm.Label(".skip"),
				asm.JrCond(asm.COND_Z, ".over"),
				asm.Ld(regC, asm.Imm(1)),
				asm.Label(".over"),
			})).To(Succeed())
			Expect(m.Reg8(asm.REG_B)).To(Equal(uint8(1)))
			Expect(m.Reg8(asm.REG_C)).To(Equal(uint8(0)))
		})

		It("should call and return", func() {
			Expect(m.Execute([]asm.Instr{
				asm.Call("Double"),
				asm.Call("Double"),
				asm.Ret(),
				asm.Label("Double"),
				asm.Ld(regH, asm.Imm(1)),
				asm.Inc(regL),
				asm.Inc(regL),
				asm.Ret(),
			})).To(Succeed())
			Expect(m.Reg8(asm.REG_L)).To(Equal(uint8(4)))
			Expect(m.Stack.Empty()).To(BeTrue())
		})

		It("should call extern subroutines", func() {
			m.Extern["UpdateKeys"] = func(m *Machine) error {
				m.Poke(0xc000, 0x10)
				return nil
			}
			Expect(m.Execute([]asm.Instr{
				asm.Call("UpdateKeys"),
				asm.Ld(regA, asm.AddrSym("wValue")),
			})).To(Succeed())
			Expect(m.Reg8(asm.REG_A)).To(Equal(uint8(0x10)))
		})

		It("should reject missing labels", func() {
			err := m.Execute([]asm.Instr{asm.Jp(".nowhere")})
			Expect(err).To(MatchError(ErrLabelMissing(".nowhere")))
		})

		It("should reject duplicate labels", func() {
			err := m.Load([]asm.Instr{asm.Label(".a"), asm.Label(".a")})
			Expect(err).To(MatchError(ErrLabelDuplicate))
		})

		It("should stop runaway loops", func() {
			m.StepLimit = 100
			err := m.Execute([]asm.Instr{
				asm.Label(".loop"),
				asm.Jp(".loop"),
			})
			Expect(err).To(MatchError(ErrStepLimit))
			Expect(m.Steps).To(Equal(100))
		})

		It("should overflow the call stack", func() {
			err := m.Execute([]asm.Instr{
				asm.Label("Recurse"),
				asm.Call("Recurse"),
			})
			Expect(err).To(MatchError(ErrStackFull))
		})

		It("should treat directives as no-ops", func() {
			Expect(m.Execute([]asm.Instr{
				asm.Comment("nothing"),
				asm.Def("X", "1"),
				asm.Section("Main", "ROM0"),
				asm.Db("1, 2"),
			})).To(Succeed())
			Expect(m.Steps).To(Equal(4))
		})
	})
})

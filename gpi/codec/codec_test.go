package codec_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/gogpi/gpi/codec"
)

var _ = Describe("IsLogicLiteralSet", func() {
	It("recognizes the 2-valued bit enumeration", func() {
		Expect(codec.IsLogicLiteralSet([]string{"0", "1"})).To(BeTrue())
	})

	It("recognizes the 9-valued std_ulogic enumeration in declaration order", func() {
		Expect(codec.IsLogicLiteralSet([]string{"U", "X", "0", "1", "Z", "W", "L", "H", "-"})).To(BeTrue())
	})

	It("rejects an enumeration out of order", func() {
		Expect(codec.IsLogicLiteralSet([]string{"X", "U", "0", "1", "Z", "W", "L", "H", "-"})).To(BeFalse())
	})

	It("rejects an unrelated enumeration", func() {
		Expect(codec.IsLogicLiteralSet([]string{"FALSE", "TRUE"})).To(BeFalse())
		Expect(codec.IsLogicLiteralSet(nil)).To(BeFalse())
	})
})

var _ = Describe("IsBooleanLiteralSet", func() {
	It("recognizes VHDL boolean's ordered literals", func() {
		Expect(codec.IsBooleanLiteralSet([]string{"FALSE", "TRUE"})).To(BeTrue())
	})

	It("rejects any other pair", func() {
		Expect(codec.IsBooleanLiteralSet([]string{"0", "1"})).To(BeFalse())
	})
})

var _ = Describe("IsCharacterLiteralSet", func() {
	It("recognizes exactly 256 literals", func() {
		lits := make([]string, 256)
		Expect(codec.IsCharacterLiteralSet(lits)).To(BeTrue())
		Expect(codec.IsCharacterLiteralSet(lits[:255])).To(BeFalse())
	})
})

var _ = Describe("IntToBinstr / BinstrToInt", func() {
	It("round-trips a value through its binstr form", func() {
		Expect(codec.IntToBinstr(5, 4)).To(Equal("0101"))
		Expect(codec.BinstrToInt("0101")).To(Equal(int64(5)))
	})

	It("is MSB-first", func() {
		Expect(codec.IntToBinstr(1, 4)).To(Equal("0001"))
	})

	It("truncates to the low width bits", func() {
		Expect(codec.IntToBinstr(0xFF, 4)).To(Equal("1111"))
	})

	It("treats H and L the same as 1 and 0", func() {
		Expect(codec.BinstrToInt("HL01")).To(Equal(int64(0b1001)))
	})

	It("treats every other logic character as a zero bit", func() {
		Expect(codec.BinstrToInt("XZU-")).To(Equal(int64(0)))
	})
})

var _ = Describe("ValidateBinstr / IsValidBit", func() {
	It("accepts every character of the 9-valued alphabet", func() {
		Expect(codec.ValidateBinstr(codec.Alphabet)).To(BeTrue())
	})

	It("rejects an empty string", func() {
		Expect(codec.ValidateBinstr("")).To(BeFalse())
	})

	It("rejects a stray character outside the alphabet", func() {
		Expect(codec.ValidateBinstr("01Q")).To(BeFalse())
		Expect(codec.IsValidBit('Q')).To(BeFalse())
	})
})

var _ = Describe("NormalizeWidth", func() {
	It("left-pads a short binstr with the fill bit", func() {
		s, err := codec.NormalizeWidth("1", 4, '0')
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal("0001"))
	})

	It("truncates a long binstr from the left, keeping the low bits", func() {
		s, err := codec.NormalizeWidth("11110101", 4, '0')
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal("0101"))
	})

	It("returns the string unchanged when already the right width", func() {
		s, err := codec.NormalizeWidth("1010", 4, '0')
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal("1010"))
	})

	It("rejects an invalid fill bit", func() {
		_, err := codec.NormalizeWidth("1", 4, 'Q')
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("VHDL force literals", func() {
	It("builds a radix-2 logic literal", func() {
		Expect(codec.VHDLForceLogic("1010")).To(Equal("2#1010#"))
	})

	It("builds a radix-10 integer literal", func() {
		Expect(codec.VHDLForceInteger(42)).To(Equal("10#42#"))
	})

	It("sign-prefixes a negative integer literal", func() {
		Expect(codec.VHDLForceInteger(-42)).To(Equal("-10#42#"))
	})
})

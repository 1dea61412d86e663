package bflang

import "github.com/zeebo/blake3"

func Compile(src []byte, fold bool) (ret Program, err error) {
	insts := Tokenize(src)
	if fold {
		insts = Fold(insts)
	}
	if err := Resolve(insts); err != nil {
		return ret, err
	}
	ret.Insts = insts
	ret.Hash = blake3.Sum256(src)
	return ret, nil
}

package ciphersuite

import (
	"crypto/dsa"
	"crypto/sha256"
	"io"
	"testing"
)

func benchmarkGenerateKey(suite CipherSuite, rand io.Reader, b *testing.B) {
	for i := 0; i < b.N; i++ {
		kp, e := suite.GenerateKeyPair(rand)
		if e != nil {
			b.FailNow()
		}
		kp.Destroy()
	}
}

func BenchmarkGenerateKeyDSA2048(b *testing.B) {
	benchmarkGenerateKey(NewDSACipherSuite(dsa.L2048N256), nil, b)
}

func BenchmarkGenerateKeySecp256k1(b *testing.B) {
	benchmarkGenerateKey(NewSecp256k1CipherSuite(), nil, b)
}

func BenchmarkGenerateKeyEd25519(b *testing.B) {
	benchmarkGenerateKey(NewEd25519CipherSuite(), nil, b)
}

func BenchmarkGenerateKeySchnorr(b *testing.B) {
	benchmarkGenerateKey(NewSchnorrCipherSuite(), nil, b)
}

func BenchmarkGenerateKeyFalcon(b *testing.B) {
	benchmarkGenerateKey(NewFalconCipherSuite(), nil, b)
}

func benchmarkSign(suite CipherSuite, rand io.Reader, b *testing.B) {
	kp, err := suite.GenerateKeyPair(rand)
	if err != nil {
		b.FailNow()
	}
	digest := sha256.Sum256([]byte("deadbeef"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, e := suite.Sign(kp, digest[:])
		if e != nil {
			b.FailNow()
		}
	}
}

func BenchmarkSignDSA2048(b *testing.B) {
	benchmarkSign(NewDSACipherSuite(dsa.L2048N256), nil, b)
}

func BenchmarkSignSecp256k1(b *testing.B) {
	benchmarkSign(NewSecp256k1CipherSuite(), nil, b)
}

func BenchmarkSignEd25519(b *testing.B) {
	benchmarkSign(NewEd25519CipherSuite(), nil, b)
}

func BenchmarkSignSchnorr(b *testing.B) {
	benchmarkSign(NewSchnorrCipherSuite(), nil, b)
}

func BenchmarkSignFalcon(b *testing.B) {
	benchmarkSign(NewFalconCipherSuite(), nil, b)
}

func benchmarkVerify(suite CipherSuite, rand io.Reader, b *testing.B) {
	kp, e := suite.GenerateKeyPair(rand)
	if e != nil {
		b.Log(e)
		b.FailNow()
	}
	digest := sha256.Sum256([]byte("deadbeef"))
	sig, esign := suite.Sign(kp, digest[:])
	if esign != nil {
		b.FailNow()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !suite.Verify(kp, digest[:], sig) {
			b.FailNow()
		}
	}
}

func BenchmarkVerifyDSA2048(b *testing.B) {
	benchmarkVerify(NewDSACipherSuite(dsa.L2048N256), nil, b)
}

func BenchmarkVerifySecp256k1(b *testing.B) {
	benchmarkVerify(NewSecp256k1CipherSuite(), nil, b)
}

func BenchmarkVerifyEd25519(b *testing.B) {
	benchmarkVerify(NewEd25519CipherSuite(), nil, b)
}

func BenchmarkVerifySchnorr(b *testing.B) {
	benchmarkVerify(NewSchnorrCipherSuite(), nil, b)
}

func BenchmarkVerifyFalcon(b *testing.B) {
	benchmarkVerify(NewFalconCipherSuite(), nil, b)
}

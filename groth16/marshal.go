package groth16

import (
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// Point serialization uses the curve's compressed encoding throughout;
// slices carry a uint32 length prefix. Decoders run the curve's subgroup
// checks, so a deserialized proof is structurally sound or rejected.

// WriteTo serializes the proof: Ar, Bs, Krs.
func (proof *Proof) WriteTo(w io.Writer) (int64, error) {
	enc := bn254.NewEncoder(w)
	toEncode := []interface{}{&proof.Ar, &proof.Bs, &proof.Krs}
	for _, v := range toEncode {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}
	return enc.BytesWritten(), nil
}

// ReadFrom deserializes a proof. Any malformed or out-of-subgroup point
// surfaces as a ProofError.
func (proof *Proof) ReadFrom(r io.Reader) (int64, error) {
	dec := bn254.NewDecoder(r)
	toDecode := []interface{}{&proof.Ar, &proof.Bs, &proof.Krs}
	for _, v := range toDecode {
		if err := dec.Decode(v); err != nil {
			return dec.BytesRead(), &ProofError{Err: err}
		}
	}
	return dec.BytesRead(), nil
}

// WriteTo serializes the verifying key.
func (vk *VerifyingKey) WriteTo(w io.Writer) (int64, error) {
	enc := bn254.NewEncoder(w)
	toEncode := []interface{}{
		&vk.G1.Alpha,
		&vk.G2.Beta,
		&vk.G2.Gamma,
		&vk.G2.Delta,
		vk.G1.K,
	}
	for _, v := range toEncode {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}
	return enc.BytesWritten(), nil
}

// ReadFrom deserializes a verifying key written by WriteTo.
func (vk *VerifyingKey) ReadFrom(r io.Reader) (int64, error) {
	dec := bn254.NewDecoder(r)
	toDecode := []interface{}{
		&vk.G1.Alpha,
		&vk.G2.Beta,
		&vk.G2.Gamma,
		&vk.G2.Delta,
		&vk.G1.K,
	}
	for _, v := range toDecode {
		if err := dec.Decode(v); err != nil {
			return dec.BytesRead(), err
		}
	}
	return dec.BytesRead(), nil
}

// WriteTo serializes the proving key.
func (pk *ProvingKey) WriteTo(w io.Writer) (int64, error) {
	enc := bn254.NewEncoder(w)
	toEncode := []interface{}{
		&pk.G1.Alpha,
		&pk.G1.Beta,
		&pk.G1.Delta,
		&pk.G2.Beta,
		&pk.G2.Delta,
		pk.G1.A,
		pk.G1.B,
		pk.G1.Z,
		pk.G1.K,
		pk.G2.B,
	}
	for _, v := range toEncode {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}
	return enc.BytesWritten(), nil
}

// ReadFrom deserializes a proving key written by WriteTo.
func (pk *ProvingKey) ReadFrom(r io.Reader) (int64, error) {
	dec := bn254.NewDecoder(r)
	toDecode := []interface{}{
		&pk.G1.Alpha,
		&pk.G1.Beta,
		&pk.G1.Delta,
		&pk.G2.Beta,
		&pk.G2.Delta,
		&pk.G1.A,
		&pk.G1.B,
		&pk.G1.Z,
		&pk.G1.K,
		&pk.G2.B,
	}
	for _, v := range toDecode {
		if err := dec.Decode(v); err != nil {
			return dec.BytesRead(), err
		}
	}
	return dec.BytesRead(), nil
}

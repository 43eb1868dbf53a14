package lnurl

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"

	"github.com/kbukum/paysdk/internal/sdkerr"
)

// Success action tags.
const (
	ActionMessage = "message"
	ActionURL     = "url"
	ActionAES     = "aes"
)

// preimageSize is the payment preimage length, which is also the AES-256 key size.
const preimageSize = 32

// SuccessAction is shown to the payer once the payment settles.
type SuccessAction struct {
	Tag         string `json:"tag" validate:"required,oneof=message url aes"`
	Message     string `json:"message,omitempty" validate:"max=144"`
	Description string `json:"description,omitempty" validate:"max=144"`
	URL         string `json:"url,omitempty" validate:"required_if=Tag url"`
	Ciphertext  string `json:"ciphertext,omitempty" validate:"required_if=Tag aes,max=4096"`
	IV          string `json:"iv,omitempty" validate:"required_if=Tag aes"`
}

// ValidateSuccessAction checks a success action's fields for its tag.
func ValidateSuccessAction(sa *SuccessAction) sdkerr.Error {
	if err := getValidator().Struct(sa); err != nil {
		return sdkerr.FromPayRequestValidationFailure(err)
	}
	return nil
}

// DecodeIV decodes a base64 AES initialization vector. It must be one block long.
func DecodeIV(s string) ([]byte, sdkerr.Error) {
	iv, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, sdkerr.FromIVDecodeFailure(err)
	}
	if len(iv) != aes.BlockSize {
		return nil, sdkerr.PayRequestIVDecode(fmt.Sprintf("iv must be %d bytes, got %d", aes.BlockSize, len(iv)))
	}
	return iv, nil
}

// DecryptSuccessAction decrypts an aes success action with the payment preimage
// as key (AES-256-CBC, PKCS#7 padding).
func DecryptSuccessAction(sa *SuccessAction, preimage []byte) (string, sdkerr.Error) {
	if sa == nil {
		return "", sdkerr.PayRequestValidation("success action is required")
	}
	if len(preimage) != preimageSize {
		return "", sdkerr.PayRequestValidation(fmt.Sprintf("preimage must be %d bytes, got %d", preimageSize, len(preimage)))
	}
	if sa.Tag != ActionAES {
		return "", sdkerr.PayRequestValidation(fmt.Sprintf("success action %q is not encrypted", sa.Tag))
	}
	iv, ivErr := DecodeIV(sa.IV)
	if ivErr != nil {
		return "", ivErr
	}
	ciphertext, err := base64.StdEncoding.DecodeString(sa.Ciphertext)
	if err != nil {
		return "", sdkerr.PayRequestValidation("ciphertext: " + err.Error())
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", sdkerr.PayRequestValidation(fmt.Sprintf("ciphertext length %d is not a multiple of the block size", len(ciphertext)))
	}
	block, err := aes.NewCipher(preimage)
	if err != nil {
		return "", sdkerr.PayRequestValidation("preimage: " + err.Error())
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)
	plain, err = unpad(plain)
	if err != nil {
		return "", sdkerr.PayRequestValidation(err.Error())
	}
	return string(plain), nil
}

func unpad(b []byte) ([]byte, error) {
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize || n > len(b) {
		return nil, fmt.Errorf("invalid padding")
	}
	if !bytes.Equal(b[len(b)-n:], bytes.Repeat([]byte{byte(n)}, n)) {
		return nil, fmt.Errorf("invalid padding")
	}
	return b[:len(b)-n], nil
}

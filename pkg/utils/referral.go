package utils

import (
	"errors"

	"github.com/speps/go-hashids/v2"
)

var ErrInvalidReferralCode = errors.New("invalid referral code")

const referralCodeMinLength = 8

func newHashID(salt string) (*hashids.HashID, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = referralCodeMinLength
	return hashids.NewWithData(hd)
}

// GenReferralCode fid 生成邀请码
func GenReferralCode(salt string, fid int64) (string, error) {
	h, err := newHashID(salt)
	if err != nil {
		return "", err
	}
	return h.EncodeInt64([]int64{fid})
}

// ParseReferralCode 邀请码解析出 fid
func ParseReferralCode(salt string, code string) (int64, error) {
	if code == "" {
		return 0, ErrInvalidReferralCode
	}
	h, err := newHashID(salt)
	if err != nil {
		return 0, err
	}
	ids, err := h.DecodeInt64WithError(code)
	if err != nil || len(ids) != 1 || ids[0] <= 0 {
		return 0, ErrInvalidReferralCode
	}
	return ids[0], nil
}

package game

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"
)

// Seeds are derived the same way everywhere: md5 the material, parse the
// first 8 hex digits. Small state space, but plenty for making daily sets
// diverge per (day, device) while staying reproducible.

func seedFrom(material string) int64 {
	sum := md5.Sum([]byte(material))
	hexed := hex.EncodeToString(sum[:])
	n, _ := strconv.ParseInt(hexed[:8], 16, 64)
	if n == 0 {
		n = 1 // zero means "unseeded" downstream
	}
	return n
}

// DailySeed pins the daily question stream for one device on one day.
// Date is formatted YYYYMMDD.
func DailySeed(date, deviceID, salt string) int64 {
	return seedFrom(fmt.Sprintf("%s_%s_%s", date, deviceID, salt))
}

// QuestionSeed pins the Monte Carlo stream used to grade one question, so
// the stored truth is reproducible from the question ID.
func QuestionSeed(questionID, salt string) int64 {
	return seedFrom(questionID + "_" + salt)
}

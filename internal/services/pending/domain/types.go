// Package domain defines pending tweet inputs awaiting a score
package domain

// Input is a row of tweetdata
type Input struct {
	ID    int64  `json:"id"`
	Tweet string `json:"tweet"`
}

// MaxTweetLen bounds tweet text in both tables
const MaxTweetLen = 255

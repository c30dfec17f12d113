// Package sigv4 implements AWS Signature Version 4 query-string presigning
// for a single S3 PUT, so browsers can upload directly to the bucket without
// the server proxying bytes or handing out credentials.
package sigv4

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	algorithm       = "AWS4-HMAC-SHA256"
	serviceName     = "s3"
	requestType     = "aws4_request"
	signedHeaders   = "content-type;host"
	unsignedPayload = "UNSIGNED-PAYLOAD"

	amzDateFormat   = "20060102T150405Z"
	dateStampFormat = "20060102"
)

// Credentials is the key pair used to derive the signing key. It is passed
// by value and held only for the duration of one Presign call.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
}

// Target identifies the object the URL authorizes a PUT against.
type Target struct {
	Bucket    string
	Region    string
	ObjectKey string
}

// Request carries the per-upload signing inputs.
type Request struct {
	ContentType string
	Expires     int64 // seconds the URL stays valid
}

// Host returns the virtual-hosted-style endpoint for the target bucket.
func Host(t Target) string {
	return fmt.Sprintf("%s.s3.%s.amazonaws.com", t.Bucket, t.Region)
}

// PublicURL returns the object's stable retrieval address, valid once the
// PUT has succeeded.
func PublicURL(t Target) string {
	return fmt.Sprintf("https://%s/%s", Host(t), t.ObjectKey)
}

// Presign computes a presigned URL authorizing one HTTP PUT of the target
// object with the given content type. The result is deterministic for
// identical inputs and the same instant; now must be the single captured
// timestamp so the date and scope cannot skew across a midnight boundary.
func Presign(creds Credentials, target Target, req Request, now time.Time) string {
	utc := now.UTC()
	amzDate := utc.Format(amzDateFormat)
	dateStamp := utc.Format(dateStampFormat)

	scope := strings.Join([]string{dateStamp, target.Region, serviceName, requestType}, "/")
	host := Host(target)

	params := url.Values{}
	params.Set("X-Amz-Algorithm", algorithm)
	params.Set("X-Amz-Credential", creds.AccessKeyID+"/"+scope)
	params.Set("X-Amz-Date", amzDate)
	params.Set("X-Amz-Expires", strconv.FormatInt(req.Expires, 10))
	params.Set("X-Amz-SignedHeaders", signedHeaders)

	// url.Values.Encode sorts keys and percent-encodes, which is the
	// canonical query form AWS verifies against. The same encoding is
	// emitted in the final URL, so signed and sent bytes cannot diverge.
	canonicalRequest := strings.Join([]string{
		"PUT",
		"/" + target.ObjectKey,
		params.Encode(),
		"content-type:" + req.ContentType,
		"host:" + host,
		"",
		signedHeaders,
		unsignedPayload,
	}, "\n")

	stringToSign := strings.Join([]string{
		algorithm,
		amzDate,
		scope,
		hashSHA256(canonicalRequest),
	}, "\n")

	key := signingKey(creds.SecretAccessKey, dateStamp, target.Region, serviceName)
	signature := hex.EncodeToString(hmacSHA256(key, stringToSign))

	params.Set("X-Amz-Signature", signature)

	return fmt.Sprintf("https://%s/%s?%s", host, target.ObjectKey, params.Encode())
}

// signingKey derives the scoped key via the chained HMAC ladder. Raw bytes
// propagate between steps; only the final signature is hex-encoded.
func signingKey(secret, dateStamp, region, service string) []byte {
	kDate := hmacSHA256([]byte("AWS4"+secret), dateStamp)
	kRegion := hmacSHA256(kDate, region)
	kService := hmacSHA256(kRegion, service)
	return hmacSHA256(kService, requestType)
}

func hmacSHA256(key []byte, data string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(data))
	return mac.Sum(nil)
}

func hashSHA256(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

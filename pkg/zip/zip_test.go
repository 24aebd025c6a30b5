// +build unit
// +build !integration

package zip

import "testing"

func TestZip(t *testing.T) {
	message := `{"snapshots":[{"date":"2024-01-01","price":100}]}`

	cypher, err := Zip([]byte(message))
	if err != nil {
		t.Fatalf("%v", err)
	}
	decypher, err := Unzip(cypher)
	if err != nil {
		t.Fatalf("%v", err)
	}

	if string(decypher) != message {
		t.Fatalf("Message was scrambled! %s", string(decypher))
	}
}

func TestUnzipGarbage(t *testing.T) {
	_, err := Unzip([]byte("not gzip"))
	if err == nil {
		t.Fatal("Expected an error for a payload without a gzip header")
	}
}

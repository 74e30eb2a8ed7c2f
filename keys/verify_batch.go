package keys

import "fmt"

// VerifyAll verifies each key against the same params and numbers the
// reports so output for long lists stays attributable.
func VerifyAll(list []string, params VerifyParams) ([]Report, error) {
	reports := make([]Report, 0, len(list))
	for i, k := range list {
		r, err := Verify(k, params)
		if err != nil {
			return nil, err
		}
		r.KeyNumber = fmt.Sprintf("%d out of %d", i+1, len(list))
		reports = append(reports, r)
	}
	return reports, nil
}

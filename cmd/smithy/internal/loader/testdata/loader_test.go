// Fixture for TestCollectFiles: a file whose extension is not
// .json, .yaml, or .yml, used to exercise the unsupported-extension error.

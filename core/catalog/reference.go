package catalog

// ReferenceTable is the human-readable band table, mirroring the AWS
// documentation on valid Fargate pod CPU and memory combinations.
const ReferenceTable = `| vCPU value | Memory value                                      |
|------------|---------------------------------------------------|
| 0.25 vCPU  | 0.5 GB, 1 GB, 2 GB                                |
| 0.5 vCPU   | 1 GB, 2 GB, 3 GB, 4 GB                            |
| 1 vCPU     | 2 GB, 3 GB, 4 GB, 5 GB, 6 GB, 7 GB, 8 GB          |
| 2 vCPU     | Between 4 GB and 16 GB in 1-GB increments         |
| 4 vCPU     | Between 8 GB and 30 GB in 1-GB increments         |
| 8 vCPU     | Between 16 GB and 60 GB in 4-GB increments        |
| 16 vCPU    | Between 32 GB and 120 GB in 8-GB increments       |
`

// ReferenceURL points at the upstream documentation the bands are taken from
const ReferenceURL = "https://docs.aws.amazon.com/eks/latest/userguide/fargate-pod-configuration.html#fargate-cpu-and-memory"
